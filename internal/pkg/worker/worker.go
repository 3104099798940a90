package worker

import (
	"time"

	"divelog_studio/pkg/logger"

	"go.uber.org/zap"
)

// Task 后台任务
type Task struct {
	Name  string
	Run   func() error
	Retry int // 已重试次数
}

// Pool 后台任务池，失败任务延迟重试
type Pool struct {
	TaskQueue  chan Task
	RetryQueue chan Task
	WorkerNum  int
	MaxRetry   int
}

func NewPool(workerNum int, bufferSize int) *Pool {
	return &Pool{
		TaskQueue:  make(chan Task, bufferSize),
		RetryQueue: make(chan Task, bufferSize/2),
		WorkerNum:  workerNum,
		MaxRetry:   3,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.WorkerNum; i++ {
		go p.worker(i)
	}
	go p.retryWorker()
	logger.Log.Info("worker pool started", zap.Int("workers", p.WorkerNum))
}

func (p *Pool) worker(id int) {
	for task := range p.TaskQueue {
		if err := task.Run(); err != nil {
			logger.Log.Warn("task failed",
				zap.Int("worker", id), zap.String("task", task.Name), zap.Error(err))

			if task.Retry < p.MaxRetry {
				task.Retry++
				select {
				case p.RetryQueue <- task:
				default:
					p.logDropped(task, err)
				}
			} else {
				p.logDropped(task, err)
			}
		}
	}
}

func (p *Pool) retryWorker() {
	for task := range p.RetryQueue {
		// 延迟重试，避免立即重试
		time.Sleep(time.Duration(task.Retry) * time.Second)

		select {
		case p.TaskQueue <- task:
		default:
			p.logDropped(task, nil)
		}
	}
}

func (p *Pool) logDropped(task Task, err error) {
	logger.Log.Error("task dropped",
		zap.String("task", task.Name), zap.Int("retries", task.Retry), zap.Error(err))
}

func (p *Pool) Add(task Task) {
	select {
	case p.TaskQueue <- task:
	default:
		p.logDropped(task, nil)
	}
}
