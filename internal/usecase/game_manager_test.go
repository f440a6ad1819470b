package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

type mockGameRepo struct {
	mock.Mock
}

func (that *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	return that.Called(ctx, game).Error(0)
}

func (that *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	return that.Called(ctx, id).Error(0)
}

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.Result) error {
	return that.Called(ctx, result).Error(0)
}

func (that *mockResultRepo) ListRecent(ctx context.Context, limit int) ([]entity.Result, error) {
	args := that.Called(ctx, limit)
	return args.Get(0).([]entity.Result), args.Error(1)
}

func newManager(gameRepo *mockGameRepo, resultRepo *mockResultRepo) *GameManager {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	if resultRepo == nil {
		return NewGameManager(logger, gomoku.DefaultSettings(), gameRepo, nil)
	}

	return NewGameManager(logger, gomoku.DefaultSettings(), gameRepo, resultRepo)
}

func playedGame(t *testing.T, moves ...gomoku.Position) *gomoku.Game {
	t.Helper()

	game, err := gomoku.NewGame(gomoku.DefaultSettings())
	require.NoError(t, err)

	for _, move := range moves {
		_, err = game.Place(move.Row, move.Col)
		require.NoError(t, err)
	}

	return game
}

func blackWin(t *testing.T) *gomoku.Game {
	t.Helper()

	return playedGame(t,
		gomoku.Position{Row: 0, Col: 0}, gomoku.Position{Row: 1, Col: 0},
		gomoku.Position{Row: 0, Col: 1}, gomoku.Position{Row: 1, Col: 1},
		gomoku.Position{Row: 0, Col: 2}, gomoku.Position{Row: 1, Col: 2},
		gomoku.Position{Row: 0, Col: 3}, gomoku.Position{Row: 1, Col: 3},
		gomoku.Position{Row: 0, Col: 4},
	)
}

func assertFreshGame(t *testing.T, game *gomoku.Game) {
	t.Helper()

	assert.Equal(t, entity.StatusOngoing, game.Status())
	assert.Equal(t, entity.Black, game.Turn())
	assert.Equal(t, 0, game.Moves())
	assert.Equal(t, 0, game.Board().Occupied())

	for row := 0; row < game.Board().Rows(); row++ {
		for col := 0; col < game.Board().Cols(); col++ {
			assert.True(t, game.Board().IsValidLocation(row, col), "cell (%d, %d)", row, col)
		}
	}
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new game when nothing is stored", func(t *testing.T) {
		// Given: a repository without the session's game
		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(&entity.Game{}, repository.ErrGameNotFound).Once()

		// When: the game is requested
		game, mode, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeBot)

		// Then: a fresh game in the requested mode is returned
		require.NoError(t, err)
		assert.Equal(t, 0, game.Moves())
		assert.Equal(t, entity.ModeBot, mode)
		gameRepo.AssertExpectations(t)
	})

	t.Run("Resumes a stored game in its stored mode", func(t *testing.T) {
		// Given: a stored game with two moves played against the bot
		snapshot := playedGame(t, gomoku.Position{Row: 7, Col: 7}, gomoku.Position{Row: 8, Col: 8}).Snapshot("s1")
		snapshot.Mode = entity.ModeBot

		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(snapshot, nil).Once()

		// When: the session reconnects asking for a local game
		game, mode, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeLocal)

		// Then: the stored game and mode are used
		require.NoError(t, err)
		assert.Equal(t, 2, game.Moves())
		assert.Equal(t, entity.Black, game.Turn())
		assert.Equal(t, entity.ModeBot, mode)
	})

	t.Run("Starts over when the stored game does not fit the board", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(&entity.Game{ID: "s1", Rows: 3, Cols: 3}, nil).Once()

		game, mode, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeLocal)

		require.NoError(t, err)
		assert.Equal(t, 0, game.Moves())
		assert.Equal(t, entity.ModeLocal, mode)
	})

	t.Run("Starts over with a clean board when a finished game has no winning run", func(t *testing.T) {
		// Given: a stored game marked finished for Black without five in a row
		snapshot := playedGame(t, gomoku.Position{Row: 7, Col: 7}, gomoku.Position{Row: 8, Col: 8}).Snapshot("s1")
		snapshot.Cells[0][0] = entity.Blocked
		snapshot.Status = entity.StatusFinished
		snapshot.Winner = entity.Black

		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(snapshot, nil).Once()

		// When: the session reconnects
		game, _, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeLocal)

		// Then: none of the stored cells leak into the new game
		require.NoError(t, err)
		assertFreshGame(t, game)
	})

	t.Run("Starts over with a clean board when an ongoing game has blocked cells", func(t *testing.T) {
		// Given: an ongoing stored game with a blocked cell
		snapshot := playedGame(t, gomoku.Position{Row: 7, Col: 7}).Snapshot("s1")
		snapshot.Cells[3][3] = entity.Blocked

		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(snapshot, nil).Once()

		// When: the session reconnects
		game, _, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeLocal)

		// Then: every cell is playable again
		require.NoError(t, err)
		assertFreshGame(t, game)
	})

	t.Run("Returns storage errors", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("GetByID", ctx, "s1").Return(&entity.Game{}, errRedisDown).Once()

		game, _, err := newManager(gameRepo, nil).GetOrCreateGame(ctx, "s1", entity.ModeLocal)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, game)
	})
}

func TestGameManager_SaveGame(t *testing.T) {
	ctx := context.Background()

	// Given: a game with one move
	game := playedGame(t, gomoku.Position{Row: 3, Col: 4})

	gameRepo := &mockGameRepo{}
	gameRepo.On("CreateOrUpdate", ctx, mock.MatchedBy(func(snapshot *entity.Game) bool {
		return snapshot.ID == "s1" && snapshot.Mode == entity.ModeLocal && snapshot.Cells[3][4] == entity.Black && snapshot.Turn == entity.White
	})).Return(nil).Once()

	// When: saving it
	err := newManager(gameRepo, nil).SaveGame(ctx, "s1", entity.ModeLocal, game)

	// Then: the snapshot is stored
	require.NoError(t, err)
	gameRepo.AssertExpectations(t)
}

func TestGameManager_RecordResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Records the winner", func(t *testing.T) {
		resultRepo := &mockResultRepo{}
		resultRepo.On("Save", ctx, mock.MatchedBy(func(result *entity.Result) bool {
			return result.GameID == "s1" && result.Winner == "Black" && result.Piece == entity.Black &&
				result.Moves == 9 && result.ID != "" && !result.FinishedAt.IsZero()
		})).Return(nil).Once()

		err := newManager(&mockGameRepo{}, resultRepo).RecordResult(ctx, "s1", blackWin(t))

		require.NoError(t, err)
		resultRepo.AssertExpectations(t)
	})

	t.Run("Records a draw with the tie marker", func(t *testing.T) {
		settings := gomoku.Settings{Rows: 1, Cols: 2, BlackName: "Black", WhiteName: "White"}
		game, err := gomoku.NewGame(settings)
		require.NoError(t, err)
		_, err = game.Place(0, 0)
		require.NoError(t, err)
		_, err = game.Place(0, 1)
		require.NoError(t, err)

		resultRepo := &mockResultRepo{}
		resultRepo.On("Save", ctx, mock.MatchedBy(func(result *entity.Result) bool {
			return result.Winner == entity.PlayerTie && result.Piece == entity.Empty
		})).Return(nil).Once()

		err = newManager(&mockGameRepo{}, resultRepo).RecordResult(ctx, "s2", game)

		require.NoError(t, err)
		resultRepo.AssertExpectations(t)
	})

	t.Run("Refuses an ongoing game", func(t *testing.T) {
		err := newManager(&mockGameRepo{}, &mockResultRepo{}).RecordResult(ctx, "s1", playedGame(t))

		assert.ErrorIs(t, err, gomoku.ErrGameOngoing)
	})

	t.Run("Skipped without a results repository", func(t *testing.T) {
		err := newManager(&mockGameRepo{}, nil).RecordResult(ctx, "s1", blackWin(t))

		assert.NoError(t, err)
	})

	t.Run("Wraps repository errors", func(t *testing.T) {
		resultRepo := &mockResultRepo{}
		resultRepo.On("Save", ctx, mock.Anything).Return(errStorageIsFull).Once()

		err := newManager(&mockGameRepo{}, resultRepo).RecordResult(ctx, "s1", blackWin(t))

		assert.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestGameManager_EndGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the stored game", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("DeleteByID", ctx, "s1").Return(nil).Once()

		require.NoError(t, newManager(gameRepo, nil).EndGame(ctx, "s1"))
		gameRepo.AssertExpectations(t)
	})

	t.Run("Missing game is fine", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("DeleteByID", ctx, "s1").Return(repository.ErrGameNotFound).Once()

		assert.NoError(t, newManager(gameRepo, nil).EndGame(ctx, "s1"))
	})

	t.Run("Storage errors are returned", func(t *testing.T) {
		gameRepo := &mockGameRepo{}
		gameRepo.On("DeleteByID", ctx, "s1").Return(errRedisDown).Once()

		assert.ErrorIs(t, newManager(gameRepo, nil).EndGame(ctx, "s1"), errRedisDown)
	})
}

func TestGameManager_RecentResults(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled without a results repository", func(t *testing.T) {
		_, err := newManager(&mockGameRepo{}, nil).RecentResults(ctx, 10)

		assert.ErrorIs(t, err, ErrResultsDisabled)
	})

	t.Run("Lists results", func(t *testing.T) {
		resultRepo := &mockResultRepo{}
		resultRepo.On("ListRecent", ctx, 10).Return([]entity.Result{{ID: "r1"}}, nil).Once()

		results, err := newManager(&mockGameRepo{}, resultRepo).RecentResults(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, []entity.Result{{ID: "r1"}}, results)
	})
}
