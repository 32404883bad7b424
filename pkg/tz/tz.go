package tz

import (
	"time"
	_ "time/tzdata"
)

// Berlin is the Europe/Berlin location (CET/CEST with automatic DST).
var Berlin *time.Location

func init() {
	var err error
	Berlin, err = time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic("tz: load Europe/Berlin: " + err.Error())
	}
}

// Format renders t as shown to members, e.g. "07.03.2026 um 06:00".
func Format(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(Berlin).Format("02.01.2006 um 15:04")
}
