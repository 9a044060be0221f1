package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"
	"yourprompty/internal/services"

	"github.com/gin-gonic/gin"
)

// 盗链提醒 SVG 图片
const hotlinkSVG = `<svg width="200" height="200" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%" height="100%" fill="#f8f9fa"/>
  <text x="50%" y="50%" font-family="Arial" font-size="14" fill="#6c757d" text-anchor="middle">
    Image hosted for yourPrompty
  </text>
</svg>`

type ImageHandler struct{}

func NewImageHandler() *ImageHandler {
	return &ImageHandler{}
}

// Upload 图片上传透传 (POST /api/upload)，需要登录
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}
	if header.Size > 10*1024*1024 {
		respondError(c, http.StatusBadRequest, "image must be smaller than 10MB")
		return
	}

	result, err := services.UploadImage(file, header)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": result.URL,
		"id":  result.ID,
	})
}

// Proxy 反代 Imgur 图片 (GET /img/:id)
// 使用 Sec-Fetch-* 头部检测盗链
func (h *ImageHandler) Proxy(c *gin.Context) {
	imageID := c.Param("id")
	if imageID == "" {
		respondError(c, http.StatusBadRequest, "image id is required")
		return
	}

	if !isAllowedRequest(c) {
		c.Header("Content-Type", "image/svg+xml")
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.String(http.StatusOK, hotlinkSVG)
		return
	}

	ext := filepath.Ext(imageID)
	id := strings.TrimSuffix(imageID, ext)
	if ext == "" {
		ext = ".jpg" // 默认扩展名
	}

	imgurURL := fmt.Sprintf("https://i.imgur.com/%s%s", id, ext)

	client := &http.Client{Timeout: 15 * time.Second}
	req, err := http.NewRequest("GET", imgurURL, nil)
	if err != nil {
		serverError(c, err)
		return
	}

	// 设置请求头，模拟浏览器
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "image/webp,image/apng,image/*,*/*;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		respondError(c, http.StatusBadGateway, "failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respondError(c, resp.StatusCode, "image not found")
		return
	}

	if contentType := resp.Header.Get("Content-Type"); contentType != "" {
		c.Header("Content-Type", contentType)
	}

	// 缓存 7 天
	c.Header("Cache-Control", "public, max-age=604800")
	c.Header("Vary", "Sec-Fetch-Site, Sec-Fetch-Mode")

	c.Status(http.StatusOK)
	io.Copy(c.Writer, resp.Body)
}

// isAllowedRequest 使用 Sec-Fetch-* 头部检测是否为合法请求
func isAllowedRequest(c *gin.Context) bool {
	secFetchSite := c.GetHeader("Sec-Fetch-Site")
	secFetchMode := c.GetHeader("Sec-Fetch-Mode")

	// 旧浏览器或直接访问没有这些头部
	if secFetchSite == "" {
		return true
	}
	if secFetchSite == "same-origin" || secFetchSite == "same-site" || secFetchSite == "none" {
		return true
	}
	// 允许在新标签页直接打开图片
	if secFetchMode == "navigate" {
		return true
	}

	// cross-site 且非导航视为盗链
	return false
}
