package sessioning

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/mmm-explorer/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestManager_BeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewManager(newMockLoader(ctrl), 0)

	assert.Nil(t, m.Current())

	_, err := m.Snapshot()
	assert.ErrorIs(t, err, ErrSessionLoading)

	status := m.Status()
	assert.Equal(t, domain.SessionIdle, status.State)
	assert.Equal(t, "test://dataset", status.Source)
}

func TestManager_StartAndSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := newMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testDataset(), nil).Times(1)

	m := NewManager(loader, 0)
	s := m.Start(context.Background())
	require.NotNil(t, s)

	// Start repetido mantém a mesma sessão
	assert.Same(t, s, m.Start(context.Background()))

	require.NoError(t, waitSession(t, s))

	snapshot, err := m.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, s.ID(), snapshot.SessionID)
	assert.Equal(t, domain.SessionReady, m.Status().State)
}

func TestManager_ReloadReplacesFinishedSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := newMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("network down")),
		loader.EXPECT().Load(gomock.Any()).Return(testDataset(), nil),
	)

	m := NewManager(loader, 0)
	first := m.Start(context.Background())
	require.Error(t, waitSession(t, first))

	_, err := m.Snapshot()
	assert.True(t, IsLoadError(err))

	second, err := m.Reload()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.NotEqual(t, first.ID(), second.ID())

	require.NoError(t, waitSession(t, second))
	snapshot, err := m.Snapshot()
	require.NoError(t, err)
	assert.Len(t, snapshot.Records, 2)

	// a sessão antiga continua terminal
	assert.Equal(t, domain.SessionLoadError, first.State())
}

func TestManager_ReloadWhileLoadingKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})

	loader := newMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		<-release
		return testDataset(), nil
	}).Times(1)

	m := NewManager(loader, 0)
	first := m.Start(context.Background())

	var wg sync.WaitGroup
	sessions := make([]*Session, 10)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := m.Reload()
			assert.NoError(t, err)
			sessions[i] = s
		}(i)
	}
	wg.Wait()

	for _, s := range sessions {
		assert.Same(t, first, s)
	}

	close(release)
	require.NoError(t, waitSession(t, first))
}

func TestManager_FallsBackToUUID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := newMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testDataset(), nil)

	m := NewManager(loader, 0)
	m.newID = func() (string, error) {
		return "", errors.New("entropy exhausted")
	}

	s := m.Start(context.Background())
	require.NoError(t, waitSession(t, s))
	assert.Len(t, s.ID(), 36)
}
