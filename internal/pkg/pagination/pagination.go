package pagination

import (
	"strconv"
)

// Page 一页记录的导航元信息
type Page struct {
	Number     int
	PageSize   int
	TotalCount int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ParsePageParam 解析 ?page= 参数，缺失或非法时回退到第 1 页
func ParsePageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// New 根据总数和页号计算分页元信息，超出范围的页号收敛到最后一页
func New(totalCount int64, pageSize, number int) *Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	return &Page{
		Number:     number,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}

// Offset 当前页在整个记录集中的起始偏移
func (p *Page) Offset() int {
	return (p.Number - 1) * p.PageSize
}

// NextNumber 下一页页号，没有下一页时返回当前页
func (p *Page) NextNumber() int {
	if p.HasNext {
		return p.Number + 1
	}
	return p.Number
}

// PrevNumber 上一页页号，没有上一页时返回当前页
func (p *Page) PrevNumber() int {
	if p.HasPrev {
		return p.Number - 1
	}
	return p.Number
}
