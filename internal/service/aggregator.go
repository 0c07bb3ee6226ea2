package service

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"

	"github.com/Ebad-S/Movie-Streaming-API/internal/model"
)

// imdbIDPattern IMDb ID 必须是 tt 前缀加数字
var imdbIDPattern = regexp.MustCompile(`^tt\d+$`)

// Aggregator 电影聚合服务，组合两个上游 API 的查询结果
type Aggregator struct {
	omdb      *OMDbClient
	streaming *StreamingClient
	upstream  *UpstreamClient
}

// NewAggregator 创建聚合服务
func NewAggregator(omdb *OMDbClient, streaming *StreamingClient, upstream *UpstreamClient) *Aggregator {
	return &Aggregator{
		omdb:      omdb,
		streaming: streaming,
		upstream:  upstream,
	}
}

// SearchByTitle 按标题搜索，每条匹配并发补全 OMDb 元数据
// 单条补全失败只记日志并丢弃，不影响整体结果
func (a *Aggregator) SearchByTitle(ctx context.Context, title string) ([]*model.MovieRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("You must supply a title!")
	}

	// 1. 流媒体 API 按标题搜索
	shows, err := a.streaming.SearchByTitle(ctx, title)
	if err != nil {
		return nil, upstreamFailure(err)
	}

	// 2. 并发补全每条匹配的 OMDb 记录，按索引写入以保持上游顺序
	results := make([]*model.MovieRecord, len(shows))
	var wg sync.WaitGroup
	for i := range shows {
		show := &shows[i]
		if show.ImdbID == "" {
			continue
		}

		wg.Add(1)
		go func(i int, show *model.StreamingShow) {
			defer wg.Done()

			movie, err := a.omdb.GetByID(ctx, show.ImdbID)
			if err != nil {
				log.Printf("[Aggregator] 补全元数据失败，丢弃该条结果 (imdbID: %s): %v", show.ImdbID, err)
				return
			}
			if !movie.Resolved() {
				log.Printf("[Aggregator] OMDb 未命中，丢弃该条结果 (imdbID: %s)", show.ImdbID)
				return
			}

			results[i] = mergeRecord(movie, show)
		}(i, show)
	}
	wg.Wait()

	// 3. 压缩掉被丢弃的条目
	merged := make([]*model.MovieRecord, 0, len(results))
	for _, r := range results {
		if r != nil {
			merged = append(merged, r)
		}
	}

	if len(merged) == 0 {
		return nil, NewNotFoundError(fmt.Sprintf("No movies found for title: %s", title))
	}
	return merged, nil
}

// GetByID 按 IMDb ID 获取合并后的完整记录
func (a *Aggregator) GetByID(ctx context.Context, imdbID string) (*model.MovieRecord, error) {
	if imdbID == "" {
		return nil, NewValidationError("You must supply an imdbID!")
	}
	if !imdbIDPattern.MatchString(imdbID) {
		return nil, NewValidationError("Invalid IMDb ID format! It must start with 'tt' followed by digits.")
	}

	show, movie, showErr, movieErr := a.fetchPair(ctx, imdbID)

	// OMDb 明确未命中优先于其他失败
	if movieErr == nil && !movie.Resolved() {
		msg := movie.Error
		if msg == "" {
			msg = "Incorrect IMDb ID."
		}
		return nil, NewValidationError(msg)
	}
	if movieErr != nil {
		return nil, upstreamFailure(movieErr)
	}
	if showErr != nil {
		return nil, upstreamFailure(showErr)
	}

	return mergeRecord(movie, show), nil
}

// GetPoster 解析海报地址并抓取图片字节
// 除输入校验错误外，该路径上的所有失败统一折叠为一个不透明错误
func (a *Aggregator) GetPoster(ctx context.Context, imdbID string) ([]byte, error) {
	if imdbID == "" {
		return nil, NewValidationError("You must supply an imdbID!")
	}

	// 单侧失败不致命，只缩短海报回退链
	show, movie, showErr, movieErr := a.fetchPair(ctx, imdbID)
	if showErr != nil {
		log.Printf("[Aggregator] 流媒体海报信息获取失败 (imdbID: %s): %v", imdbID, showErr)
		show = nil
	}
	if movieErr != nil {
		log.Printf("[Aggregator] OMDb 海报信息获取失败 (imdbID: %s): %v", imdbID, movieErr)
		movie = nil
	}

	url := posterURL(show, movie)
	if url == "" {
		return nil, posterUnavailable()
	}

	data, err := a.upstream.FetchImage(ctx, url)
	if err != nil {
		log.Printf("[Aggregator] 海报图片抓取失败 (imdbID: %s, url: %s): %v", imdbID, url, err)
		return nil, posterUnavailable()
	}
	return data, nil
}

// VerifyID 校验 IMDb ID 格式并确认其在元数据 API 中可解析
func (a *Aggregator) VerifyID(ctx context.Context, imdbID string) error {
	if imdbID == "" {
		return NewValidationError("You must supply an imdbID!")
	}
	if !imdbIDPattern.MatchString(imdbID) {
		return NewValidationError("Invalid IMDb ID format! It must start with 'tt' followed by digits.")
	}

	movie, err := a.omdb.GetByID(ctx, imdbID)
	if err != nil {
		return upstreamFailure(err)
	}
	if !movie.Resolved() {
		msg := movie.Error
		if msg == "" {
			msg = "Incorrect IMDb ID."
		}
		return NewValidationError(msg)
	}
	return nil
}

// fetchPair 并发请求两个上游，两边都完成后一起返回
// 先失败的一方不会中断另一方
func (a *Aggregator) fetchPair(ctx context.Context, imdbID string) (*model.StreamingShow, *model.OMDbMovie, error, error) {
	var (
		wg       sync.WaitGroup
		show     *model.StreamingShow
		movie    *model.OMDbMovie
		showErr  error
		movieErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		show, showErr = a.streaming.GetShow(ctx, imdbID)
	}()
	go func() {
		defer wg.Done()
		movie, movieErr = a.omdb.GetByID(ctx, imdbID)
	}()
	wg.Wait()

	return show, movie, showErr, movieErr
}

// mergeRecord 将 OMDb 记录和流媒体片段合并为完整记录
func mergeRecord(movie *model.OMDbMovie, show *model.StreamingShow) *model.MovieRecord {
	record := &model.MovieRecord{OMDbMovie: *movie}
	if show != nil {
		record.Streaming = &model.StreamingInfo{
			Poster:  streamingPoster(show),
			Rating:  show.Rating,
			Options: show.StreamingOptions,
		}
	}
	return record
}

// streamingPoster 流媒体图集中的海报回退链：竖版大图优先，再横版
func streamingPoster(show *model.StreamingShow) string {
	for _, key := range []string{"w720", "w480", "w360"} {
		if url := show.ImageSet.VerticalPoster[key]; url != "" {
			return url
		}
	}
	return show.ImageSet.HorizontalPoster["w720"]
}

// posterURL 完整海报回退链：流媒体图集 → OMDb 海报字段
// OMDb 的 "N/A" 占位符视为无海报
func posterURL(show *model.StreamingShow, movie *model.OMDbMovie) string {
	if show != nil {
		if url := streamingPoster(show); url != "" {
			return url
		}
	}
	if movie != nil && movie.Poster != "" && movie.Poster != "N/A" {
		return movie.Poster
	}
	return ""
}

func posterUnavailable() *Error {
	return NewAPIError("The image could not be found or could not be read.", http.StatusInternalServerError)
}

// upstreamFailure 统一归类上游失败
// 校验错误原样透传；"not subscribed" 映射为 403 订阅错误；其余为携带上游详情的 API 错误
func upstreamFailure(err error) error {
	e, ok := AsError(err)
	if !ok {
		return NewAPIError("Upstream API error", http.StatusInternalServerError)
	}
	if e.Kind == KindValidation {
		return e
	}
	if strings.Contains(strings.ToLower(e.Message), "not subscribed") {
		return NewAPIError(e.Message, http.StatusForbidden)
	}
	if e.Kind == KindAPI {
		return e
	}
	return NewAPIError(e.Message, http.StatusInternalServerError)
}
