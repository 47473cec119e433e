package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 1, 20, 0},
		{"explicit", "page=3&limit=50", 3, 50, 100},
		{"negative page", "page=-1", 1, 20, 0},
		{"zero limit", "limit=0", 1, 20, 0},
		{"limit capped", "limit=9999", 1, 200, 0},
		{"garbage", "page=abc&limit=xyz", 1, 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Parse(ctxWithQuery(tt.query))
			if p.Page != tt.wantPage || p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Errorf("Parse(%q) = %+v, want page=%d limit=%d offset=%d",
					tt.query, p, tt.wantPage, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestLimit(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"limit=25", 25},
		{"limit=-5", 0},
		{"limit=9999", 200},
		{"limit=abc", 0},
	}

	for _, tt := range tests {
		if got := Limit(ctxWithQuery(tt.query)); got != tt.want {
			t.Errorf("Limit(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
