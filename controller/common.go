package controller

import "github.com/AnshNarg/bit-coin/model"

// NewResponse creates a success envelope with the given data and message.
func NewResponse(data any, message string) model.Response {
	return model.Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(err string) model.Response {
	return model.Response{
		Success: false,
		Error:   err,
	}
}
