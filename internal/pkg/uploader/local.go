package uploader

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"divelog_studio/internal/pkg/config"

	"github.com/google/uuid"
)

type Uploader interface {
	UploadFile(file *multipart.FileHeader) (string, error)
}

// LocalUploader 把媒体文件写到本地盘，URL 由静态路由提供
type LocalUploader struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewLocalUploader() (*LocalUploader, error) {
	cfg := config.GlobalConfig.Upload
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{
		dir:     cfg.Dir,
		baseURL: cfg.BaseURL,
		maxSize: cfg.MaxSize,
	}, nil
}

func (u *LocalUploader) UploadFile(file *multipart.FileHeader) (string, error) {
	if u.maxSize > 0 && file.Size > u.maxSize {
		return "", fmt.Errorf("file %s exceeds size limit", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Generate unique filename: YYYYMMDD/uuid.ext
	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	dst, err := os.Create(filepath.Join(u.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return u.baseURL + "/" + filename, nil
}

// GlobalUploader instance
var GlobalUploader Uploader

func InitUploader() error {
	uploader, err := NewLocalUploader()
	if err != nil {
		return err
	}
	GlobalUploader = uploader
	return nil
}
