package oss

import (
	"Vidhub/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// NewClient 阿里云 OSS 客户端，未配置 AK 时读取环境变量 OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET
func NewClient(conf *config.OssConfig) *oss.Client {
	var provider credentials.CredentialsProvider = credentials.NewEnvironmentVariableCredentialsProvider()
	if conf.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.AccessKeyID, conf.AccessKeySecret)
	}
	cfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(conf.Endpoint).
		WithRegion(conf.Region)
	return oss.NewClient(cfg)
}
