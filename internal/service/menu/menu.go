package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Service отдаёт меню из файла. Файл читается на каждый запрос, правки видны без рестарта.
type Service struct {
	path string
}

func New(path string) *Service {
	return &Service{path: path}
}

func (s *Service) GetMenu(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrMenuUnavailable, s.path, err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: %s is not valid json", ErrMenuUnavailable, s.path)
	}

	return json.RawMessage(raw), nil
}
