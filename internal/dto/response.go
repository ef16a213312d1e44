package dto

// Response — единый конверт всех ответов API
// Success — итог запроса; Message — человеко-читаемое пояснение (pt-BR,
// как его показывает фронтенд); Data — полезная нагрузка; Count — число
// записей для массовых операций
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(msg string, data any) Response {
	return Response{Success: true, Message: msg, Data: data}
}

func OKCount(msg string, count int) Response {
	return Response{Success: true, Message: msg, Count: &count}
}

func Fail(msg string) Response {
	return Response{Success: false, Message: msg}
}
