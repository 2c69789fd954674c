package urscript

import (
	"context"
	"errors"
	"sync"
)

// ErrWorkerClosed возвращается для заданий, отправленных после Close.
var ErrWorkerClosed = errors.New("worker is closed")

type job struct {
	run  func(d *Dispatcher) Result
	resp chan Result
}

// Worker выполняет операции Dispatcher на выделенной горутине в порядке поступления.
// Это граница взаимного исключения для ConnectionManager: сам менеджер не блокируется.
type Worker struct {
	dispatcher *Dispatcher
	jobs       chan job
	quit       chan struct{}
	done       chan struct{}
	closeOnce  sync.Once
}

// NewWorker создает и запускает Worker.
func NewWorker(d *Dispatcher) *Worker {
	w := &Worker{
		dispatcher: d,
		jobs:       make(chan job),
		quit:       make(chan struct{}),
		done:       make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer close(w.done)
	for {
		select {
		case <-w.quit:
			w.dispatcher.Manager().Disconnect()
			return
		case j := <-w.jobs:
			j.resp <- j.run(w.dispatcher)
		}
	}
}

// submit ставит задание в очередь. Канал ответа буферизован, поэтому
// вызывающий может не читать результат.
func (w *Worker) submit(run func(d *Dispatcher) Result) <-chan Result {
	resp := make(chan Result, 1)
	select {
	case w.jobs <- job{run: run, resp: resp}:
	case <-w.quit:
		resp <- fail(StatusNotConnected, ErrWorkerClosed)
	}
	return resp
}

// Connect асинхронно вызывает ConnectionManager.Connect.
func (w *Worker) Connect() <-chan Result {
	return w.submit(func(d *Dispatcher) Result {
		return d.Manager().Connect()
	})
}

// Disconnect асинхронно закрывает канал. Результат всегда успешный.
func (w *Worker) Disconnect() <-chan Result {
	return w.submit(func(d *Dispatcher) Result {
		d.Manager().Disconnect()
		return ok(nil)
	})
}

// SendScript асинхронно вызывает Dispatcher.SendScript.
func (w *Worker) SendScript(path string) <-chan Result {
	return w.submit(func(d *Dispatcher) Result {
		return d.SendScript(path)
	})
}

// SendImmediate асинхронно вызывает Dispatcher.SendImmediate.
func (w *Worker) SendImmediate(command string) <-chan Result {
	return w.submit(func(d *Dispatcher) Result {
		return d.SendImmediate(command)
	})
}

// Snapshot - согласованный срез состояния менеджера.
type Snapshot struct {
	State    ConnectionState
	Endpoint *Endpoint
}

// Snapshot читает состояние менеджера на горутине Worker.
// После Close возвращает Disconnected.
func (w *Worker) Snapshot() Snapshot {
	var snap Snapshot
	res := <-w.submit(func(d *Dispatcher) Result {
		snap.State = d.Manager().State()
		if ep, found := d.Manager().Endpoint(); found {
			snap.Endpoint = &ep
		}
		return ok(nil)
	})
	if !res.OK() {
		return Snapshot{State: Disconnected}
	}
	return snap
}

// Close закрывает канал и останавливает горутину. Повторный вызов безопасен.
func (w *Worker) Close() {
	w.closeOnce.Do(func() {
		close(w.quit)
	})
	<-w.done
}

// Wait ожидает результат или отмену контекста. Отмена не прерывает уже начатую операцию.
func Wait(ctx context.Context, ch <-chan Result) (Result, error) {
	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
