package eventloop

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrStopped возвращается, если цикл уже остановлен
var ErrStopped = errors.New("event loop stopped")

// Loop - однопоточный цикл событий. Все события выполняются по очереди в одной горутине,
// каждое до конца. Сетевые вызовы выполняются вне цикла через Async,
// их продолжения ставятся в очередь цикла в порядке завершения.
type Loop struct {
	events    chan func()
	afterEach func()
	logger    *logrus.Logger

	mu      sync.Mutex
	ctx     context.Context
	stopped bool
	done    chan struct{}
	// pending - число незавершенных Async вместе с продолжениями, idle сигналит о нуле
	pending int
	idle    *sync.Cond
}

// New создает цикл. afterEach вызывается в горутине цикла после каждого события.
func New(logger *logrus.Logger, afterEach func()) *Loop {
	l := &Loop{
		events:    make(chan func(), 256),
		afterEach: afterEach,
		logger:    logger,
		ctx:       context.Background(),
		done:      make(chan struct{}),
	}
	l.idle = sync.NewCond(&l.mu)
	return l
}

// Run обрабатывает события до отмены контекста
func (l *Loop) Run(ctx context.Context) {
	l.mu.Lock()
	l.ctx = ctx
	l.mu.Unlock()

	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			l.mu.Lock()
			l.stopped = true
			l.mu.Unlock()
			l.logger.Info("Event loop stopped")
			return
		case fn := <-l.events:
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.WithField("panic", r).Error("Recovered from panic in event handler")
		}
	}()
	fn()
	if l.afterEach != nil {
		l.afterEach()
	}
}

// Post ставит событие в очередь
func (l *Loop) Post(fn func()) error {
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if stopped {
		return ErrStopped
	}

	select {
	case l.events <- fn:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Call выполняет fn в цикле и ждет ее завершения
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}
}

// Async запускает work вне цикла. Возвращенное продолжение (если не nil) выполняется в цикле.
// Отмены уже запущенной работы нет: контекст отменяется только при остановке цикла.
// Безопасно вызывать одновременно с Wait.
func (l *Loop) Async(work func(ctx context.Context) func()) {
	l.mu.Lock()
	ctx := l.ctx
	l.pending++
	l.mu.Unlock()

	go func() {
		cont := work(ctx)
		if cont == nil {
			l.finish()
			return
		}
		if err := l.Post(func() {
			defer l.finish()
			cont()
		}); err != nil {
			l.finish()
		}
	}()
}

func (l *Loop) finish() {
	l.mu.Lock()
	l.pending--
	if l.pending == 0 {
		l.idle.Broadcast()
	}
	l.mu.Unlock()
}

// Every ставит fn в очередь с заданным интервалом до отмены контекста
func (l *Loop) Every(ctx context.Context, interval time.Duration, fn func()) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := l.Post(fn); err != nil {
					return
				}
			}
		}
	}()
}

// AfterFunc ставит fn в очередь через d. Возвращенная функция отменяет таймер.
func (l *Loop) AfterFunc(d time.Duration, fn func()) (stop func() bool) {
	t := time.AfterFunc(d, func() {
		_ = l.Post(fn)
	})
	return t.Stop
}

// Wait ждет завершения всей асинхронной работы и ее продолжений.
// Нельзя вызывать из горутины цикла.
func (l *Loop) Wait() {
	l.mu.Lock()
	for l.pending > 0 {
		l.idle.Wait()
	}
	l.mu.Unlock()
}
