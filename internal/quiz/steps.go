package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/ivanoskov/momentum_bot/internal/model"
)

// ErrInvalidTransition шаг теста не допускает такого перехода
var ErrInvalidTransition = errors.New("invalid test step transition")

// события машины шагов теста
const (
	EventStart  = "start"
	EventNext   = "next"
	EventFinish = "finish"
)

var allSteps = []string{
	string(model.StepWelcome),
	string(model.StepQuestion1),
	string(model.StepQuestion2),
	string(model.StepQuestion3),
	string(model.StepResults),
}

// steps граф переходов: start из любого шага ведет к первому вопросу,
// next двигает строго на один шаг вперед, finish возвращает к приветствию
var steps = fsm.Events{
	{Name: EventStart, Src: allSteps, Dst: string(model.StepQuestion1)},
	{Name: EventNext, Src: []string{string(model.StepWelcome)}, Dst: string(model.StepQuestion1)},
	{Name: EventNext, Src: []string{string(model.StepQuestion1)}, Dst: string(model.StepQuestion2)},
	{Name: EventNext, Src: []string{string(model.StepQuestion2)}, Dst: string(model.StepQuestion3)},
	{Name: EventNext, Src: []string{string(model.StepQuestion3)}, Dst: string(model.StepResults)},
	{Name: EventFinish, Src: []string{string(model.StepResults)}, Dst: string(model.StepWelcome)},
}

// Fire применяет событие к шагу и возвращает новый шаг.
// Машина создается на каждый вызов, поэтому функция не имеет состояния.
func Fire(ctx context.Context, step model.TestStep, event string) (model.TestStep, error) {
	if !step.Valid() {
		return step, fmt.Errorf("%w: unknown step %q", ErrInvalidTransition, step)
	}

	machine := fsm.NewFSM(string(step), steps, fsm.Callbacks{})
	if err := machine.Event(ctx, event); err != nil {
		var noTransition fsm.NoTransitionError
		if errors.As(err, &noTransition) {
			return step, nil
		}
		return step, fmt.Errorf("%w: %s from %s: %v", ErrInvalidTransition, event, step, err)
	}
	return model.TestStep(machine.Current()), nil
}

// Next следующий шаг теста
func Next(step model.TestStep) (model.TestStep, error) {
	return Fire(context.Background(), step, EventNext)
}

// Can сообщает, допустимо ли событие на данном шаге
func Can(step model.TestStep, event string) bool {
	if !step.Valid() {
		return false
	}
	return fsm.NewFSM(string(step), steps, fsm.Callbacks{}).Can(event)
}

// Progress процент прохождения теста для индикатора
func Progress(step model.TestStep) int {
	switch step {
	case model.StepQuestion1:
		return 33
	case model.StepQuestion2:
		return 66
	case model.StepQuestion3:
		return 100
	}
	return 0
}
