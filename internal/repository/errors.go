package repository

import "errors"

// ErrNotFound возвращается (обёрнутым) при отсутствии записи,
// обработчики переводят его в страницу 404
var ErrNotFound = errors.New("запись не найдена")
