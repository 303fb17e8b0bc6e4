package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageParam(t *testing.T) {
	assert.Equal(t, 1, ParsePageParam(""))
	assert.Equal(t, 1, ParsePageParam("abc"))
	assert.Equal(t, 1, ParsePageParam("0"))
	assert.Equal(t, 1, ParsePageParam("-3"))
	assert.Equal(t, 7, ParsePageParam("7"))
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		pageSize   int
		number     int
		wantNumber int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"单页", 5, 10, 1, 1, 1, false, false},
		{"整除边界", 20, 10, 2, 2, 2, false, true},
		{"余数多一页", 21, 10, 1, 1, 3, true, false},
		{"中间页", 35, 10, 2, 2, 4, true, true},
		{"超出范围取最后一页", 13, 10, 99, 2, 2, false, true},
		{"空数据集", 0, 10, 5, 1, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.total, tt.pageSize, tt.number)
			assert.Equal(t, tt.wantNumber, p.Number)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantNext, p.HasNext)
			assert.Equal(t, tt.wantPrev, p.HasPrev)
		})
	}
}

func TestOffset(t *testing.T) {
	p := New(35, 10, 3)
	assert.Equal(t, 20, p.Offset())
}

func TestNeighborNumbers(t *testing.T) {
	p := New(35, 10, 2)
	assert.Equal(t, 3, p.NextNumber())
	assert.Equal(t, 1, p.PrevNumber())

	last := New(35, 10, 4)
	assert.Equal(t, 4, last.NextNumber())
}
