package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

var ErrorSubmitInFlight = errors.New("a submission is already in flight")
