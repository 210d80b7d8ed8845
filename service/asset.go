package service

import (
	"Vidhub/config"
	"Vidhub/pkg/log"
	pkgminio "Vidhub/pkg/minio"
	pkgoss "Vidhub/pkg/oss"
	"Vidhub/pkg/snowflake"
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const (
	AssetCategoryVideo     = "videos"
	AssetCategoryThumbnail = "thumbnails"
)

// StoredAsset 对象存储返回的访问地址与对象 key
type StoredAsset struct {
	URL string
	Key string
}

// IAssetStore 媒体资源存储能力，核心逻辑只传递本地路径，不接触文件内容
type IAssetStore interface {
	Store(ctx context.Context, localPath, category string) (*StoredAsset, error)
	Remove(ctx context.Context, key string) error
}

// NewAssetStore 按 storage.driver 选择 oss 或 minio
func NewAssetStore(conf *config.Config) (IAssetStore, error) {
	switch conf.Storage.Driver {
	case config.StorageDriverOss:
		return &OssAssetStore{
			Client:  pkgoss.NewClient(conf.Oss),
			Bucket:  conf.Storage.Bucket,
			BaseURL: publicBaseURL(conf.Storage.PublicBaseURL, fmt.Sprintf("https://%s.%s", conf.Storage.Bucket, conf.Oss.Endpoint)),
		}, nil
	case config.StorageDriverMinio:
		client, err := pkgminio.NewClient(conf.Minio)
		if err != nil {
			return nil, err
		}
		scheme := "http"
		if conf.Minio.UseSSL {
			scheme = "https"
		}
		return &MinioAssetStore{
			Client:  client,
			Bucket:  conf.Storage.Bucket,
			Region:  conf.Minio.Region,
			BaseURL: publicBaseURL(conf.Storage.PublicBaseURL, fmt.Sprintf("%s://%s/%s", scheme, conf.Minio.Endpoint, conf.Storage.Bucket)),
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
}

// ObjectKey 形如 videos/2025/01/02/1234567890.mp4
func ObjectKey(category, localPath string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%s%s",
		category,
		now.Format("2006/01/02"),
		snowflake.GenString(),
		strings.ToLower(filepath.Ext(localPath)),
	)
}

func publicBaseURL(configured, fallback string) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	return fallback
}

func contentType(localPath string) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(localPath))); t != "" {
		return t
	}
	return "application/octet-stream"
}

type OssAssetStore struct {
	Client  *oss.Client
	Bucket  string
	BaseURL string
}

func (s *OssAssetStore) Store(ctx context.Context, localPath, category string) (*StoredAsset, error) {
	key := ObjectKey(category, localPath, time.Now())
	_, err := s.Client.PutObjectFromFile(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Bucket),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(contentType(localPath)),
	}, localPath)
	if err != nil {
		return nil, fmt.Errorf("oss put %s: %w", key, err)
	}
	return &StoredAsset{URL: s.BaseURL + "/" + key, Key: key}, nil
}

func (s *OssAssetStore) Remove(ctx context.Context, key string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Bucket),
		Key:    oss.Ptr(key),
	})
	return err
}

type MinioAssetStore struct {
	Client  *minio.Client
	Bucket  string
	Region  string
	BaseURL string
}

func (s *MinioAssetStore) Store(ctx context.Context, localPath, category string) (*StoredAsset, error) {
	if err := pkgminio.EnsureBucket(ctx, s.Client, s.Bucket, s.Region); err != nil {
		return nil, fmt.Errorf("check bucket error: %w", err)
	}
	key := ObjectKey(category, localPath, time.Now())
	_, err := s.Client.FPutObject(ctx, s.Bucket, key, localPath, minio.PutObjectOptions{
		ContentType: contentType(localPath),
	})
	if err != nil {
		return nil, fmt.Errorf("minio put %s: %w", key, err)
	}
	return &StoredAsset{URL: s.BaseURL + "/" + key, Key: key}, nil
}

func (s *MinioAssetStore) Remove(ctx context.Context, key string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, key, minio.RemoveObjectOptions{})
}

// removeAssets 提交后的清理，失败只记录日志
func removeAssets(ctx context.Context, store IAssetStore, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := store.Remove(ctx, key); err != nil {
			log.L.Warn("remove asset failed", zap.String("key", key), zap.Error(err))
		}
	}
}
