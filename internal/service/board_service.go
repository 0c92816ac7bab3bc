package service

import (
	"context"
	"errors"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/repository"
)

// BoardService manages boards on behalf of their single owner.
type BoardService struct {
	boards repository.BoardRepository
	todos  repository.TodoRepository
}

func NewBoardService(boards repository.BoardRepository, todos repository.TodoRepository) *BoardService {
	return &BoardService{boards: boards, todos: todos}
}

func (s *BoardService) Create(ctx context.Context, owner *entity.User, title string) (*entity.Board, error) {
	board := &entity.Board{Title: title, OwnerID: owner.ID}
	if err := s.boards.CreateBoard(ctx, board); err != nil {
		logger.Error().Err(err).Msg("Error creating board")
		return nil, err
	}
	return board, nil
}

func (s *BoardService) ListForOwner(ctx context.Context, owner *entity.User) ([]*entity.Board, error) {
	boards, err := s.boards.ListBoardsByOwner(ctx, owner.ID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing boards for user %s", owner.ID)
		return nil, err
	}
	return boards, nil
}

// FindOwned returns the board only if owner owns it. Missing and foreign
// boards both yield ErrBoardNotFound.
func (s *BoardService) FindOwned(ctx context.Context, owner *entity.User, boardID entity.ID) (*entity.Board, error) {
	board, err := s.boards.FindOwned(ctx, owner.ID, boardID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBoardNotFound
		}
		logger.Error().Err(err).Msgf("Error getting board %s", boardID)
		return nil, err
	}
	return board, nil
}

// Delete removes the board and then its todos.
func (s *BoardService) Delete(ctx context.Context, owner *entity.User, boardID entity.ID) error {
	return s.deleteCascade(ctx, owner.ID, boardID)
}

// deleteCascade is two separate statements. A failure between them leaves
// orphaned todos, which stay unreachable because their board is gone.
func (s *BoardService) deleteCascade(ctx context.Context, ownerID, boardID entity.ID) error {
	if err := s.boards.DeleteOwned(ctx, ownerID, boardID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBoardNotFound
		}
		logger.Error().Err(err).Msgf("Error deleting board %s", boardID)
		return err
	}

	n, err := s.todos.DeleteByBoard(ctx, boardID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting todos of board %s", boardID)
		return err
	}
	logger.Info().Msgf("Deleted board %s and %d todos", boardID, n)
	return nil
}
