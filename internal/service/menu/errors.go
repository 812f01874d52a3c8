package menu

import "errors"

var ErrMenuUnavailable = errors.New("menu unavailable")
