package story

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamhumanity/story-api/internal"
	"teamhumanity/story-api/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDeps(t *testing.T) *internal.Deps {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.Story{}))

	return &internal.Deps{DB: db}
}

func seedListStory(t *testing.T, db *gorm.DB, name string, sortOrder, slot *int, published bool) {
	t.Helper()

	require.NoError(t, db.Create(&model.Story{
		Name:          name,
		SortOrder:     sortOrder,
		HighlightSlot: slot,
		IsPublished:   published,
	}).Error)
}

func getStories(t *testing.T, d *internal.Deps, query string) (int, []model.Story) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/stories"+query, nil)
	c.Set("requestID", "0000000000")

	StoryList(c, d)

	if w.Code != http.StatusOK {
		return w.Code, nil
	}

	var got []model.Story
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))

	return w.Code, got
}

func names(stories []model.Story) []string {
	out := make([]string, 0, len(stories))
	for _, s := range stories {
		out = append(out, s.Name)
	}

	return out
}

func TestStoryList_PinsLeadBeyondPageWindow(t *testing.T) {
	d := testDeps(t)
	viper.Set("stories.page_limit", 2)

	one, two := 1, 2
	k10, k20, k30, k40, k50 := 10, 20, 30, 40, 50

	seedListStory(t, d.DB, "a", &k10, nil, true)
	seedListStory(t, d.DB, "b", &k20, nil, true)
	seedListStory(t, d.DB, "c", &k30, nil, true)
	seedListStory(t, d.DB, "pin2", &k40, &two, true)
	seedListStory(t, d.DB, "pin1", &k50, &one, true)
	seedListStory(t, d.DB, "draft", nil, nil, false)

	// Both pins sort after the page window yet still lead the head.
	code, got := getStories(t, d, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"pin1", "pin2", "a", "b"}, names(got))
}

func TestStoryList_LaterPagesSkipPins(t *testing.T) {
	d := testDeps(t)
	viper.Set("stories.page_limit", 2)

	one := 1
	k10, k20, k30, k40 := 10, 20, 30, 40

	seedListStory(t, d.DB, "pin1", &k10, &one, true)
	seedListStory(t, d.DB, "a", &k20, nil, true)
	seedListStory(t, d.DB, "b", &k30, nil, true)
	seedListStory(t, d.DB, "c", &k40, nil, true)

	code, got := getStories(t, d, "?page=1")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []string{"c"}, names(got))
}

func TestStoryList_RejectsBadPaging(t *testing.T) {
	d := testDeps(t)
	viper.Set("stories.page_limit", 2)

	code, _ := getStories(t, d, "?page=-1")
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = getStories(t, d, "?limit=0")
	require.Equal(t, http.StatusBadRequest, code)
}
