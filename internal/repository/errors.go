package repository

import "errors"

// ErrStockInsuficiente is returned by guarded stock updates when a
// subtraction would leave a repuesto below zero.
var ErrStockInsuficiente = errors.New("stock insuficiente")
