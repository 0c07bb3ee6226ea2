package model

// OMDbMovie 元数据 API（OMDb）返回的电影记录
// Response/Error 用于判断查询是否命中，其余字段原样透传给调用方
type OMDbMovie struct {
	Title      string       `json:"Title"`
	Year       string       `json:"Year,omitempty"`
	Rated      string       `json:"Rated,omitempty"`
	Released   string       `json:"Released,omitempty"`
	Runtime    string       `json:"Runtime,omitempty"`
	Genre      string       `json:"Genre,omitempty"`
	Director   string       `json:"Director,omitempty"`
	Writer     string       `json:"Writer,omitempty"`
	Actors     string       `json:"Actors,omitempty"`
	Plot       string       `json:"Plot,omitempty"`
	Language   string       `json:"Language,omitempty"`
	Country    string       `json:"Country,omitempty"`
	Awards     string       `json:"Awards,omitempty"`
	Poster     string       `json:"Poster,omitempty"`
	Ratings    []OMDbRating `json:"Ratings,omitempty"`
	Metascore  string       `json:"Metascore,omitempty"`
	ImdbRating string       `json:"imdbRating,omitempty"`
	ImdbVotes  string       `json:"imdbVotes,omitempty"`
	ImdbID     string       `json:"imdbID,omitempty"`
	Type       string       `json:"Type,omitempty"`
	BoxOffice  string       `json:"BoxOffice,omitempty"`
	Response   string       `json:"Response,omitempty"`
	Error      string       `json:"Error,omitempty"`
}

// OMDbRating 单个评分来源
type OMDbRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Resolved 判断记录是否命中（OMDb 未命中时 Response 为 "False"）
func (m *OMDbMovie) Resolved() bool {
	return m.Response != "False"
}

// StreamingShow 流媒体可用性 API 返回的影片记录
type StreamingShow struct {
	ShowType         string                       `json:"showType"`
	ImdbID           string                       `json:"imdbId"`
	Title            string                       `json:"title"`
	ReleaseYear      int                          `json:"releaseYear"`
	Rating           float64                      `json:"rating"`
	ImageSet         ImageSet                     `json:"imageSet"`
	StreamingOptions map[string][]StreamingOption `json:"streamingOptions"`
}

// ImageSet 海报图集合，键为分辨率（w360/w480/w720 等）
type ImageSet struct {
	VerticalPoster   map[string]string `json:"verticalPoster"`
	HorizontalPoster map[string]string `json:"horizontalPoster"`
}

// StreamingOption 单个平台的播放选项
type StreamingOption struct {
	Type    string            `json:"type"`
	Quality string            `json:"quality,omitempty"`
	Link    string            `json:"link"`
	Price   *StreamingPrice   `json:"price,omitempty"`
	Service *StreamingService `json:"service,omitempty"`
}

// StreamingPrice 租赁/购买价格
type StreamingPrice struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// StreamingService 平台信息
type StreamingService struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// StreamingInfo 合并进电影记录的流媒体片段
type StreamingInfo struct {
	Poster  string                       `json:"poster"`
	Rating  float64                      `json:"rating"`
	Options map[string][]StreamingOption `json:"options"`
}

// MovieRecord 聚合后的完整电影记录：OMDb 字段 + streaming 片段
// 每次请求时临时构建，不落库
type MovieRecord struct {
	OMDbMovie
	Streaming *StreamingInfo `json:"streaming,omitempty"`
}
