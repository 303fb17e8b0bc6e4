package render

import (
	"bytes"
	"html/template"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Renderer 持有整套页面模板。单独渲染到字节的能力
// 是为了让首页可以把渲染结果整体放进快照缓存。
type Renderer struct {
	tmpl *template.Template
}

func Load(glob string) (*Renderer, error) {
	tmpl, err := template.ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Bytes 渲染指定模板并返回字节
func (r *Renderer) Bytes(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// HTML 渲染页面并写出响应
func (r *Renderer) HTML(c *gin.Context, status int, name string, data any) {
	body, err := r.Bytes(name, data)
	if err != nil {
		r.InternalError(c, err)
		return
	}
	c.Data(status, "text/html; charset=utf-8", body)
}

// NotFound 渲染 404 页面
func (r *Renderer) NotFound(c *gin.Context) {
	r.HTML(c, http.StatusNotFound, "not_found.html", gin.H{"Path": c.Request.URL.Path})
}

// InternalError 渲染 500 页面
func (r *Renderer) InternalError(c *gin.Context, err error) {
	log.ErrorContext(c.Request.Context(), "render failed", "err", err)
	c.Data(http.StatusInternalServerError, "text/html; charset=utf-8",
		[]byte("<html><body><h1>Server error</h1></body></html>"))
}
