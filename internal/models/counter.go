package models

import (
	"strconv"
)

// Counter is the value held in a counter file.
type Counter int64

func (c Counter) Add(x int64) Counter {
	return Counter(int64(c) + x)
}

func (c Counter) Inc() Counter {
	return c.Add(1)
}

func (c Counter) Type() string {
	return "counter"
}

func (c Counter) String() string {
	return strconv.FormatInt(int64(c), 10)
}
