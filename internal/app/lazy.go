package app

import (
	"context"
	"sync"
)

// Lazy guarda um único App por processo. A primeira chamada de Get monta o app;
// as seguintes reaproveitam a mesma instância. Uma falha não fica em cache,
// então a próxima invocação tenta de novo.
type Lazy struct {
	mu    sync.Mutex
	app   *App
	build func(ctx context.Context) (*App, error)
}

func NewLazy(build func(ctx context.Context) (*App, error)) *Lazy {
	return &Lazy{build: build}
}

func (l *Lazy) Get(ctx context.Context) (*App, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.app != nil {
		return l.app, nil
	}

	app, err := l.build(ctx)
	if err != nil {
		return nil, err
	}

	l.app = app
	return app, nil
}
