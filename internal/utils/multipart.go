package utils

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
)

// 多部分请求体解析错误，文案直接作为对外响应消息
var (
	ErrNotMultipart = errors.New("Content-Type must be multipart/form-data")
	ErrNoBoundary   = errors.New("No boundary found in multipart request")
	ErrNoImagePart  = errors.New("No image file found in request")
	ErrEmptyImage   = errors.New("Image file is empty")
	ErrMalformed    = errors.New("Malformed multipart request body")
)

// ExtractImageFile 从 multipart/form-data 请求体中提取第一个图片文件的字节
// 图片部分按声明的 Content-Type 识别：image/* 或 application/octet-stream
func ExtractImageFile(body []byte, contentType string) ([]byte, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" {
		return nil, ErrNotMultipart
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, ErrNoBoundary
	}

	reader := multipart.NewReader(bytes.NewReader(body), boundary)
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return nil, ErrNoImagePart
		}
		if err != nil {
			return nil, ErrMalformed
		}

		if !isImagePart(part.Header.Get("Content-Type")) {
			continue
		}

		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, ErrMalformed
		}
		if len(data) == 0 {
			return nil, ErrEmptyImage
		}
		return data, nil
	}
}

// isImagePart 判断部分的声明类型是否为图片负载
func isImagePart(contentType string) bool {
	if strings.HasPrefix(contentType, "image/") {
		return true
	}
	return contentType == "application/octet-stream"
}
