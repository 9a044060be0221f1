package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ImgurResponse Imgur API 响应结构
type ImgurResponse struct {
	Data struct {
		ID         string `json:"id"`
		Link       string `json:"link"`
		DeleteHash string `json:"deletehash"`
		Type       string `json:"type"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// ImageUploadResult 上传结果
type ImageUploadResult struct {
	URL         string `json:"url"`          // 反代链接
	OriginalURL string `json:"original_url"` // 原始 Imgur 链接
	ID          string `json:"id"`           // 图片 ID
	DeleteHash  string `json:"-"`            // 删除凭证，只存库不下发
}

// UploadToImgur 上传图片到 Imgur
func UploadToImgur(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	clientID := os.Getenv("IMGUR_CLIENT_ID")
	if clientID == "" {
		return nil, fmt.Errorf("IMGUR_CLIENT_ID 未配置")
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}

	base64Image := base64.StdEncoding.EncodeToString(fileBytes)

	// 使用 multipart/form-data 格式构建请求体
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("image", base64Image); err != nil {
		return nil, fmt.Errorf("写入请求体失败: %w", err)
	}
	if err := writer.WriteField("type", "base64"); err != nil {
		return nil, fmt.Errorf("写入请求体失败: %w", err)
	}
	writer.Close()

	req, err := http.NewRequest("POST", "https://api.imgur.com/3/image", &requestBody)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Authorization", "Client-ID "+clientID)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("上传请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	var imgurResp ImgurResponse
	if err := json.Unmarshal(body, &imgurResp); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	if !imgurResp.Success {
		return nil, fmt.Errorf("Imgur 上传失败: status %d", imgurResp.Status)
	}

	// 获取文件扩展名
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		switch imgurResp.Data.Type {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".jpg"
		}
	}

	// 返回结果，使用反代链接
	return &ImageUploadResult{
		URL:         fmt.Sprintf("/img/%s%s", imgurResp.Data.ID, ext),
		OriginalURL: imgurResp.Data.Link,
		ID:          imgurResp.Data.ID,
		DeleteHash:  imgurResp.Data.DeleteHash,
	}, nil
}

// UploadImage 通用上传接口（未来可切换到其他服务）
// 当前默认使用 Imgur
func UploadImage(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	return UploadToImgur(file, header)
}

// DeleteImageAsync 删帖时尽力清理 Imgur 上的图片。
// 失败只记日志，不重试也不影响删帖
func DeleteImageAsync(deleteHash string) {
	if deleteHash == "" {
		return
	}
	go func() {
		clientID := os.Getenv("IMGUR_CLIENT_ID")
		if clientID == "" {
			return
		}

		req, err := http.NewRequest("DELETE", "https://api.imgur.com/3/image/"+deleteHash, nil)
		if err != nil {
			return
		}
		req.Header.Set("Authorization", "Client-ID "+clientID)

		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			log.Printf("delete imgur image failed: %v", err)
			return
		}
		resp.Body.Close()
	}()
}
