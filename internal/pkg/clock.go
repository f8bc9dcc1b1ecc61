package pkg

import "time"

// Clock abstrai o relógio e o delay simulado de processamento,
// para que os testes não dependam do relógio real.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
