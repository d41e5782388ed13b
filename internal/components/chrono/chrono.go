package chrono

import (
	"fmt"
	"time"
)

// API is the interface that anything depending on the system clock should use.
type API interface {
	Now() time.Time
	Location() *time.Location
}

// StandardImpl reads the system clock, in Japan time since that is where every basho
// boundary is defined.
type StandardImpl struct {
	location *time.Location
}

func NewStandardImpl() (StandardImpl, error) {
	location, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		return StandardImpl{}, err
	}
	return StandardImpl{location: location}, nil
}

func (s StandardImpl) Now() time.Time {
	return time.Now().In(s.location)
}

func (s StandardImpl) Location() *time.Location {
	return s.location
}

// FixedImpl always returns the same instant, for tests.
type FixedImpl struct {
	Time time.Time
}

func (f FixedImpl) Now() time.Time {
	return f.Time
}

func (f FixedImpl) Location() *time.Location {
	return f.Time.Location()
}

// BashoID identifies a tournament by the year and month it is held in.
type BashoID struct {
	Year  int
	Month time.Month
}

func (b BashoID) String() string {
	return fmt.Sprintf("%04d%02d", b.Year, int(b.Month))
}

// Basho gets the current basho, or if between tournaments, the most recent one.
// Honbasho are held in the odd months.
func Basho(now time.Time) BashoID {
	month := now.Month()
	if month%2 == 0 {
		month--
	}
	return BashoID{Year: now.Year(), Month: month}
}
