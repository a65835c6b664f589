package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"vidlink/domain/dto"
	"vidlink/domain/model"
	"vidlink/usecase"
)

// Mock implementations
type MockVideoParser struct {
	mock.Mock
}

func (m *MockVideoParser) Parse(ctx context.Context, url, platform string) (*model.VideoInfo, error) {
	args := m.Called(ctx, url, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VideoInfo), args.Error(1)
}

type MockVideoCache struct {
	mock.Mock
}

func (m *MockVideoCache) Put(url string, info *model.VideoInfo) {
	m.Called(url, info)
}

func (m *MockVideoCache) Get(url string) (*model.VideoInfo, bool) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.VideoInfo), args.Bool(1)
}

func (m *MockVideoCache) ClearOne(url string) { m.Called(url) }
func (m *MockVideoCache) ClearAll()           { m.Called() }
func (m *MockVideoCache) CleanExpired()       { m.Called() }

func (m *MockVideoCache) Stats() (int, int, *int64, *int64) {
	args := m.Called()
	return args.Int(0), args.Int(1), nil, nil
}

type MockParseHistory struct {
	mock.Mock
}

func (m *MockParseHistory) Record(ctx context.Context, rec *model.ParseRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockParseHistory) List(ctx context.Context, limit, offset int) ([]model.ParseRecord, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]model.ParseRecord), args.Get(1).(int64), args.Error(2)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func sampleInfo() *model.VideoInfo {
	return &model.VideoInfo{
		Platform: "tiktok",
		Title:    "hello",
		DownloadURLs: model.DownloadURLs{
			Standard: "https://cdn.example.com/v.mp4",
		},
		MediaType: model.MediaTypeVideo,
	}
}

func TestParseUseCase_InvalidURL(t *testing.T) {
	mockParser := new(MockVideoParser)
	parseUseCase := usecase.NewParseUseCase(mockParser)

	_, _, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: "not a url"})
	assert.ErrorIs(t, err, usecase.ErrInvalidURL)
	mockParser.AssertNotCalled(t, "Parse")
}

func TestParseUseCase_UnsupportedPlatform(t *testing.T) {
	mockParser := new(MockVideoParser)
	parseUseCase := usecase.NewParseUseCase(mockParser)

	_, _, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: "https://example.com/x"})
	assert.ErrorIs(t, err, usecase.ErrUnsupportedPlatform)
	mockParser.AssertNotCalled(t, "Parse")
}

func TestParseUseCase_ProvidedPlatformSkipsDetection(t *testing.T) {
	mockParser := new(MockVideoParser)
	mockParser.On("Parse", mock.Anything, "https://example.com/x", "custom").
		Return(sampleInfo(), nil).
		Once()

	parseUseCase := usecase.NewParseUseCase(mockParser)

	info, fromCache, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{
		URL:      "https://example.com/x",
		Platform: "custom",
	})
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, "hello", info.Title)
	mockParser.AssertExpectations(t)
}

func TestParseUseCase_CacheHit(t *testing.T) {
	url := "https://www.tiktok.com/@u/video/123"

	mockParser := new(MockVideoParser)
	mockCache := new(MockVideoCache)
	mockCache.On("Get", url).Return(sampleInfo(), true).Once()

	parseUseCase := usecase.NewParseUseCase(mockParser).WithCache(mockCache)

	info, fromCache, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: url})
	assert.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, "hello", info.Title)
	mockParser.AssertNotCalled(t, "Parse")
	mockCache.AssertExpectations(t)
}

func TestParseUseCase_CacheMissParsesAndStores(t *testing.T) {
	url := "https://www.tiktok.com/@u/video/123"
	info := sampleInfo()

	mockParser := new(MockVideoParser)
	mockParser.On("Parse", mock.Anything, url, "tiktok").Return(info, nil).Once()

	mockCache := new(MockVideoCache)
	mockCache.On("Get", url).Return(nil, false).Once()
	mockCache.On("Put", url, info).Once()

	mockHistory := new(MockParseHistory)
	mockHistory.On("Record", mock.Anything, mock.MatchedBy(func(rec *model.ParseRecord) bool {
		return rec.Success && !rec.CacheHit && rec.Platform == "tiktok"
	})).Return(nil).Once()

	mockPublisher := new(MockEventPublisher)
	mockPublisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	parseUseCase := usecase.NewParseUseCase(mockParser).
		WithCache(mockCache).
		WithHistory(mockHistory).
		WithPublisher(mockPublisher)

	got, fromCache, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: url})
	assert.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, info, got)

	mockParser.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
	mockPublisher.AssertExpectations(t)
}

func TestParseUseCase_UpstreamFailureRecorded(t *testing.T) {
	url := "https://www.tiktok.com/@u/video/123"

	mockParser := new(MockVideoParser)
	mockParser.On("Parse", mock.Anything, url, "tiktok").
		Return(nil, assert.AnError).
		Once()

	mockHistory := new(MockParseHistory)
	mockHistory.On("Record", mock.Anything, mock.MatchedBy(func(rec *model.ParseRecord) bool {
		return !rec.Success && rec.Error == assert.AnError.Error()
	})).Return(nil).Once()

	parseUseCase := usecase.NewParseUseCase(mockParser).WithHistory(mockHistory)

	_, _, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: url})
	assert.ErrorIs(t, err, assert.AnError)

	mockParser.AssertExpectations(t)
	mockHistory.AssertExpectations(t)
}

func TestParseUseCase_HistoryFailureDoesNotSurface(t *testing.T) {
	url := "https://www.tiktok.com/@u/video/123"

	mockParser := new(MockVideoParser)
	mockParser.On("Parse", mock.Anything, url, "tiktok").Return(sampleInfo(), nil).Once()

	mockHistory := new(MockParseHistory)
	mockHistory.On("Record", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	parseUseCase := usecase.NewParseUseCase(mockParser).WithHistory(mockHistory)

	_, _, err := parseUseCase.Parse(context.Background(), &dto.ParseRequest{URL: url})
	assert.NoError(t, err)
	mockHistory.AssertExpectations(t)
}

func TestParseUseCase_ListHistory(t *testing.T) {
	records := []model.ParseRecord{{ID: 1, URL: "https://example.com/x", Platform: "tiktok"}}

	mockHistory := new(MockParseHistory)
	mockHistory.On("List", mock.Anything, 25, 0).Return(records, int64(1), nil).Once()

	parseUseCase := usecase.NewParseUseCase(new(MockVideoParser)).WithHistory(mockHistory)

	response, err := parseUseCase.ListHistory(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), response.Total)
	assert.Len(t, response.Items, 1)
	mockHistory.AssertExpectations(t)
}

func TestParseUseCase_ListHistoryWithoutRepository(t *testing.T) {
	parseUseCase := usecase.NewParseUseCase(new(MockVideoParser))
	_, err := parseUseCase.ListHistory(context.Background(), 1, 25)
	assert.Error(t, err)
}
