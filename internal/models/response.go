package models

import "time"

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// NewOKResponse wraps data in a successful response envelope
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        200,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// ResponseCurrentTime returns the current time in epoch milliseconds
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}
