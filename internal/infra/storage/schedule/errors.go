package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда для даты еще нет сохраненного расписания
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrEncodePayload возвращается, если расписание не удалось сериализовать
	ErrEncodePayload = errors.New("schedule.repository: failed to encode payload")

	// ErrDecodePayload возвращается для поврежденного или неизвестного формата payload
	ErrDecodePayload = errors.New("schedule.repository: failed to decode payload")
)
