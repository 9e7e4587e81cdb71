package wrapper

// JSONResult carries a usecase outcome to the handler. Code is the HTTP status and
// Data is the response body.
type JSONResult struct {
	Code int
	Data interface{}
}

func ResponseSuccess(httpCode int, data interface{}) JSONResult {
	return JSONResult{
		Code: httpCode,
		Data: data,
	}
}
