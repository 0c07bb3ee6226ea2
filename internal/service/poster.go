package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/singleflight"
)

// PosterFetcher 海报远程获取与 ID 校验能力，由聚合服务提供
type PosterFetcher interface {
	GetPoster(ctx context.Context, imdbID string) ([]byte, error)
	VerifyID(ctx context.Context, imdbID string) error
}

// PosterStore 海报存储，本地磁盘优先，缺失时透传远程抓取
// 远程抓取结果不落盘，只有显式上传才会写文件
type PosterStore struct {
	dir     string
	fetcher PosterFetcher
	group   singleflight.Group
}

// NewPosterStore 创建海报存储
func NewPosterStore(dir string, fetcher PosterFetcher) *PosterStore {
	return &PosterStore{
		dir:     dir,
		fetcher: fetcher,
	}
}

// Get 获取海报字节，本地文件命中时不访问上游
func (s *PosterStore) Get(ctx context.Context, imdbID string) ([]byte, error) {
	if imdbID == "" {
		return nil, NewValidationError("You must supply an imdbID!")
	}

	data, err := os.ReadFile(s.path(imdbID))
	if err == nil {
		return data, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("读取海报文件失败 (imdbID: %s): %w", imdbID, err)
	}

	// 使用 singleflight 避免同一 ID 的并发重复抓取
	val, err, _ := s.group.Do(imdbID, func() (interface{}, error) {
		return s.fetcher.GetPoster(ctx, imdbID)
	})
	if err != nil {
		return nil, err
	}
	return val.([]byte), nil
}

// Put 写入海报字节，覆盖同名文件
// 先确认 ID 在元数据 API 中可解析，校验失败一律按 400 上报
func (s *PosterStore) Put(ctx context.Context, imdbID string, data []byte) error {
	if err := s.fetcher.VerifyID(ctx, imdbID); err != nil {
		if IsKind(err, KindValidation) {
			return err
		}
		return NewValidationError(fmt.Sprintf("Could not verify IMDb ID: %s", MessageOf(err)))
	}

	if err := os.WriteFile(s.path(imdbID), data, 0o644); err != nil {
		return fmt.Errorf("写入海报文件失败 (imdbID: %s): %w", imdbID, err)
	}
	return nil
}

func (s *PosterStore) path(imdbID string) string {
	return filepath.Join(s.dir, imdbID+".jpg")
}
