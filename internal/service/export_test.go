package service

import "context"

// Settle ждет завершения всей асинхронной работы сессии
func (s *Session) Settle() { s.loop.Wait() }

// PendingFixes возвращает число ожидающих координат запросов
func (s *Session) PendingFixes() int {
	n := 0
	_ = s.loop.Call(context.Background(), func() { n = len(s.tracker.waiters) })
	return n
}
