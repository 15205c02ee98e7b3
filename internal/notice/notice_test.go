package notice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/traffic_overlay/internal/notice"
	"github.com/shenikar/traffic_overlay/internal/notice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryBoard_RecentNewestFirst(t *testing.T) {
	board := notice.NewMemoryBoard(3)
	ctx := context.Background()

	for _, msg := range []string{"a", "b", "c", "d"} {
		require.NoError(t, board.Publish(ctx, notice.New(notice.KindNavigation, msg)))
	}

	recent, err := board.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3, "capacity drops the oldest notice")
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "b", recent[2].Message)

	recent, err = board.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "d", recent[0].Message)
}

func TestMulti_PublishesToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockPublisher(ctrl)
	second := mocks.NewMockPublisher(ctrl)
	n := notice.New(notice.KindGPSError, "GPS Error: timeout")

	first.EXPECT().Publish(gomock.Any(), n).Return(errors.New("redis down")).Times(1)
	second.EXPECT().Publish(gomock.Any(), n).Return(nil).Times(1)

	err := notice.Multi(first, second).Publish(context.Background(), n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
