package service

import (
	"context"
	"errors"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/repository"
)

// TodoService manages todos. Access is always checked against the owner of
// the todo's board; todos carry no owner of their own.
type TodoService struct {
	todos  repository.TodoRepository
	boards *BoardService
}

func NewTodoService(todos repository.TodoRepository, boards *BoardService) *TodoService {
	return &TodoService{todos: todos, boards: boards}
}

// Create adds a todo to a board owned by owner. An empty status means pending.
// Ownership is checked before the status.
func (s *TodoService) Create(ctx context.Context, owner *entity.User, boardID entity.ID, content, status string) (*entity.Todo, error) {
	if _, err := s.boards.FindOwned(ctx, owner, boardID); err != nil {
		return nil, err
	}

	st := entity.StatusPending
	if status != "" {
		parsed, err := entity.ParseStatus(status)
		if err != nil {
			return nil, err
		}
		st = parsed
	}

	todo := &entity.Todo{Content: content, Status: st, BoardID: boardID}
	if err := s.todos.CreateTodo(ctx, todo); err != nil {
		logger.Error().Err(err).Msg("Error creating todo")
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) ListForBoard(ctx context.Context, owner *entity.User, boardID entity.ID) ([]*entity.Todo, error) {
	if _, err := s.boards.FindOwned(ctx, owner, boardID); err != nil {
		return nil, err
	}

	todos, err := s.todos.ListTodosByBoard(ctx, boardID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing todos of board %s", boardID)
		return nil, err
	}
	return todos, nil
}

// Update applies the fields present in patch once the caller is authorized.
// An empty patch writes nothing and returns the todo as stored.
func (s *TodoService) Update(ctx context.Context, owner *entity.User, todoID entity.ID, patch entity.TodoPatch) (*entity.Todo, error) {
	todo, err := s.authorize(ctx, owner, todoID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return todo, nil
	}

	if patch.Status != nil {
		status, err := entity.ParseStatus(*patch.Status)
		if err != nil {
			return nil, err
		}
		todo.Status = status
	}
	if patch.Content != nil {
		todo.Content = *patch.Content
	}

	if err := s.todos.UpdateTodo(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		logger.Error().Err(err).Msgf("Error updating todo %s", todoID)
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, owner *entity.User, todoID entity.ID) error {
	if _, err := s.authorize(ctx, owner, todoID); err != nil {
		return err
	}

	if err := s.todos.DeleteTodo(ctx, todoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTodoNotFound
		}
		logger.Error().Err(err).Msgf("Error deleting todo %s", todoID)
		return err
	}
	return nil
}

// authorize loads the todo, then checks its board. The caller already knows
// the todo id, so an ownership failure is ErrForbidden rather than not found.
func (s *TodoService) authorize(ctx context.Context, owner *entity.User, todoID entity.ID) (*entity.Todo, error) {
	todo, err := s.todos.GetTodoByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTodoNotFound
		}
		logger.Error().Err(err).Msgf("Error getting todo %s", todoID)
		return nil, err
	}

	if _, err := s.boards.FindOwned(ctx, owner, todo.BoardID); err != nil {
		if errors.Is(err, ErrBoardNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	return todo, nil
}
