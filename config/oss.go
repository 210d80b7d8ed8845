package config

const (
	StorageDriverOss   = "oss"
	StorageDriverMinio = "minio"
)

// Storage 媒体资源存储，driver 选择 oss 或 minio
type Storage struct {
	Driver        string `json:"driver" yaml:"driver"`
	Bucket        string `json:"bucket" yaml:"bucket"`
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
}

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	AccessKeyID     string `json:"ak" yaml:"ak"`
	AccessKeySecret string `json:"sk" yaml:"sk"`
}

type MinioConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	AccessKey string `json:"access_key" yaml:"access_key"`
	SecretKey string `json:"secret_key" yaml:"secret_key"`
	UseSSL    bool   `json:"use_ssl" yaml:"use_ssl"`
	Region    string `json:"region" yaml:"region"`
}
