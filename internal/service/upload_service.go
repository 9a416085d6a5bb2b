package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// UploadService 文件上传服务（产品图、支付二维码等）
type UploadService struct {
	minioClient *minio.Client
	bucketName  string
}

// NewUploadService 创建上传服务
func NewUploadService(minioClient *minio.Client, bucketName string) *UploadService {
	return &UploadService{
		minioClient: minioClient,
		bucketName:  bucketName,
	}
}

// UploadResult 上传结果
type UploadResult struct {
	ObjectName string `json:"object_name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

// Upload 上传文件，按日期分目录存储
func (s *UploadService) Upload(ctx context.Context, category, fileName string, reader io.Reader, fileSize int64, contentType string) (*UploadResult, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("storage not configured")
	}

	objectName := fmt.Sprintf("%s/%s/%s%s",
		category, time.Now().Format("2006/01/02"), uuid.New().String()[:8], filepath.Ext(fileName))

	_, err := s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	return &UploadResult{
		ObjectName: objectName,
		URL:        fmt.Sprintf("/%s/%s", s.bucketName, objectName),
		Size:       fileSize,
	}, nil
}

// Download 读取文件流
func (s *UploadService) Download(ctx context.Context, objectName string) (io.ReadCloser, error) {
	if s.minioClient == nil {
		return nil, fmt.Errorf("storage not configured")
	}
	object, err := s.minioClient.GetObject(ctx, s.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return object, nil
}
