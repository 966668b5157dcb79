package state

import "errors"

var (
	// ErrStateNotFound возвращается, когда снапшот состояния отсутствует
	// (первый запуск)
	ErrStateNotFound = errors.New("state.repository: state not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("state.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("state.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("state.repository: failed to scan row")

	// ErrEncode возвращается при ошибке сериализации состояния
	ErrEncode = errors.New("state.repository: failed to encode state")

	// ErrDecode возвращается при ошибке десериализации состояния
	ErrDecode = errors.New("state.repository: failed to decode state")
)
