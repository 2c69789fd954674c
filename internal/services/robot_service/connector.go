package robot_service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/urAdapter/internal/config"
	"github.com/iwtcode/urAdapter/internal/domain/entities"
	"github.com/iwtcode/urAdapter/internal/domain/models"
	"github.com/iwtcode/urAdapter/internal/interfaces"
	"github.com/iwtcode/urAdapter/internal/middleware/logging"
	apperrors "github.com/iwtcode/urAdapter/pkg/errors"
	"github.com/iwtcode/urAdapter/urscript"
	"gorm.io/gorm"
)

// session - сессия одного робота. Все сетевые операции идут через worker,
// info защищена mu.
type session struct {
	mu     sync.Mutex
	info   models.ConnectionInfo
	worker *urscript.Worker
}

func (s *session) snapshot() *models.ConnectionInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	info := s.info
	return &info
}

// apply обновляет состояние сессии по срезу Worker и возвращает, изменилось ли состояние канала.
func (s *session) apply(snap urscript.Snapshot, used bool) (changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	healthy := snap.State == urscript.Connected
	changed = s.info.IsHealthy != healthy

	s.info.State = snap.State.String()
	s.info.IsHealthy = healthy
	s.info.Endpoint = endpointInfo(snap.Endpoint)
	if used {
		s.info.LastUsed = time.Now()
		s.info.UseCount++
	}
	return changed
}

type SessionManager struct {
	mu      sync.RWMutex
	pool    map[string]*session
	pending map[string]struct{} // хосты, для которых идет подключение
	robot   config.RobotConfig
	dbRepo  interfaces.RobotSessionRepository
	events  *EventPublisher
	logger  *logging.Logger
}

func NewSessionManager(cfg *config.AppConfig, dbRepo interfaces.RobotSessionRepository, events *EventPublisher, logger *logging.Logger) *SessionManager {
	return &SessionManager{
		pool:    make(map[string]*session),
		pending: make(map[string]struct{}),
		robot:   cfg.Robot,
		dbRepo:  dbRepo,
		events:  events,
		logger:  logger.WithPrefix("CONNECTOR"),
	}
}

func (sm *SessionManager) newWorker(host string, fallbackPort int) *urscript.Worker {
	manager := urscript.NewConnectionManager(sm.robot.Endpoints(host, fallbackPort), urscript.Options{
		ProbeTimeout: sm.robot.ProbeTimeout,
		StopDelay:    sm.robot.StopDelay,
		Logger:       sm.logger.Entry(),
	})
	return urscript.NewWorker(urscript.NewDispatcher(manager))
}

func (sm *SessionManager) reserveHost(host string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, busy := sm.pending[host]; busy {
		return fmt.Errorf("подключение к '%s' уже выполняется: %w", host, apperrors.ErrAlreadyExists)
	}
	for id, s := range sm.pool {
		if s.info.Host == host {
			return fmt.Errorf("подключение для '%s' уже активно с SessionID %s: %w", host, id, apperrors.ErrAlreadyExists)
		}
	}
	sm.pending[host] = struct{}{}
	return nil
}

func (sm *SessionManager) releaseHost(host string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.pending, host)
}

func (sm *SessionManager) CreateConnection(ctx context.Context, req models.ConnectionRequest) (*models.ConnectionInfo, error) {
	host := strings.TrimSpace(req.Host)
	if host == "" || strings.ContainsAny(host, " /") {
		return nil, apperrors.NewAppError(apperrors.BadRequestCode, "неверный формат host", fmt.Errorf("получено '%s'", req.Host), true)
	}

	if err := sm.reserveHost(host); err != nil {
		return nil, err
	}
	defer sm.releaseHost(host)

	existing, err := sm.dbRepo.GetByHost(host)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("ошибка при проверке робота в БД: %w", err)
	}
	if existing != nil {
		sm.logger.Warn("Session for host exists in DB but not in pool. Deleting old DB record and creating a new session.", "host", host)
		_ = sm.dbRepo.Delete(existing.SessionID)
	}

	worker := sm.newWorker(host, req.FallbackPort)
	res, err := urscript.Wait(ctx, worker.Connect())
	if err == nil {
		err = res.AsError()
	}
	if err != nil {
		worker.Close()
		return nil, fmt.Errorf("первичная проверка подключения провалена: %w", err)
	}

	sessionID := uuid.New().String()
	if err := sm.dbRepo.Create(&entities.RobotSession{
		SessionID:    sessionID,
		Host:         host,
		FallbackPort: req.FallbackPort,
		Status:       entities.StatusConnected,
	}); err != nil {
		worker.Close()
		return nil, fmt.Errorf("не удалось сохранить новую сессию %s в БД: %w", sessionID, err)
	}

	now := time.Now()
	s := &session{
		worker: worker,
		info: models.ConnectionInfo{
			SessionID: sessionID,
			Host:      host,
			State:     urscript.Connected.String(),
			Endpoint:  endpointInfo(res.Endpoint),
			CreatedAt: now,
			LastUsed:  now,
			UseCount:  1,
			IsHealthy: true,
		},
	}

	sm.mu.Lock()
	sm.pool[sessionID] = s
	sm.mu.Unlock()

	sm.logger.Info("Connection created successfully", "sessionID", sessionID, "host", host, "endpoint", res.Endpoint)
	return s.snapshot(), nil
}

// RestoreConnection возвращает сохраненную сессию в пул. Недоступный робот не является ошибкой:
// сессия остается в пуле с IsHealthy=false.
func (sm *SessionManager) RestoreConnection(ctx context.Context, stored entities.RobotSession) (*models.ConnectionInfo, error) {
	s := &session{
		worker: sm.newWorker(stored.Host, stored.FallbackPort),
		info: models.ConnectionInfo{
			SessionID: stored.SessionID,
			Host:      stored.Host,
			State:     urscript.Disconnected.String(),
			CreatedAt: stored.CreatedAt,
			LastUsed:  time.Now(),
		},
	}

	res, err := urscript.Wait(ctx, s.worker.Connect())
	if err == nil {
		err = res.AsError()
	}
	s.apply(s.worker.Snapshot(), false)

	sm.mu.Lock()
	if old, exists := sm.pool[stored.SessionID]; exists {
		defer old.worker.Close()
	}
	sm.pool[stored.SessionID] = s
	sm.mu.Unlock()

	sm.persistStatus(s)
	if err != nil {
		sm.logger.Warn("Restored session is unhealthy", "sessionID", stored.SessionID, "host", stored.Host, "error", err)
	}
	return s.snapshot(), nil
}

func (sm *SessionManager) lookup(sessionID string) (*session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, found := sm.pool[sessionID]
	return s, found
}

func (sm *SessionManager) GetConnection(sessionID string) (*models.ConnectionInfo, bool) {
	s, found := sm.lookup(sessionID)
	if !found {
		return nil, false
	}
	return s.snapshot(), true
}

func (sm *SessionManager) GetAllConnections() []*models.ConnectionInfo {
	sm.mu.RLock()
	sessions := make([]*session, 0, len(sm.pool))
	for _, s := range sm.pool {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	conns := make([]*models.ConnectionInfo, 0, len(sessions))
	for _, s := range sessions {
		conns = append(conns, s.snapshot())
	}
	sort.Slice(conns, func(i, j int) bool {
		return conns[i].CreatedAt.Before(conns[j].CreatedAt)
	})
	return conns
}

func (sm *SessionManager) DeleteConnection(ctx context.Context, sessionID string) error {
	sm.mu.Lock()
	s, exists := sm.pool[sessionID]
	delete(sm.pool, sessionID)
	sm.mu.Unlock()

	if !exists {
		err := sm.dbRepo.Delete(sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("сессия '%s' не найдена ни в активном пуле, ни в БД: %w", sessionID, apperrors.ErrDataNotFound)
		}
		if err != nil {
			return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
		}
		sm.logger.Info("Session (not in pool) successfully deleted from DB.", "sessionID", sessionID)
		return nil
	}

	// Close отправляет стоп-команду и закрывает сокет
	s.worker.Close()

	if err := sm.dbRepo.Delete(sessionID); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("ошибка удаления сессии '%s' из БД: %w", sessionID, err)
	}

	sm.logger.Info("Session deleted successfully.", "sessionID", sessionID)
	return nil
}

// CheckConnection сообщает состояние канала. Если канал закрыт, выполняется одна попытка подключения.
func (sm *SessionManager) CheckConnection(ctx context.Context, sessionID string) (*models.ConnectionInfo, error) {
	s, exists := sm.lookup(sessionID)
	if !exists {
		return nil, fmt.Errorf("сессия '%s' не найдена: %w", sessionID, apperrors.ErrDataNotFound)
	}

	var checkErr error
	if s.worker.Snapshot().State != urscript.Connected {
		res, err := urscript.Wait(ctx, s.worker.Connect())
		if err != nil {
			checkErr = err
		} else {
			checkErr = res.AsError()
		}
	}

	if s.apply(s.worker.Snapshot(), true) {
		info := s.snapshot()
		sm.logger.Info("Session health status changed", "sessionID", sessionID, "healthy", info.IsHealthy)
		sm.persistStatus(s)
	}

	return s.snapshot(), checkErr
}

func (sm *SessionManager) SendScript(ctx context.Context, req models.ScriptRequest) (*models.DispatchResult, error) {
	path, err := sm.scriptPath(req.Path)
	if err != nil {
		return nil, err
	}
	return sm.dispatch(ctx, req.SessionID, models.DispatchKindScript, func(w *urscript.Worker) <-chan urscript.Result {
		return w.SendScript(path)
	})
}

// scriptPath разрешает путь сценария внутри каталога UR_SCRIPT_PATH.
// Пустой путь означает сам UR_SCRIPT_PATH; относительный путь берется от его каталога.
func (sm *SessionManager) scriptPath(requested string) (string, error) {
	if requested == "" {
		return sm.robot.ScriptPath, nil
	}
	dir, err := filepath.Abs(filepath.Dir(sm.robot.ScriptPath))
	if err != nil {
		return "", fmt.Errorf("не удалось определить каталог сценариев: %w", err)
	}
	path := requested
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	path = filepath.Clean(path)

	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", apperrors.NewAppError(apperrors.BadRequestCode, "путь сценария вне каталога сценариев", fmt.Errorf("получено '%s'", requested), true)
	}
	return path, nil
}

func (sm *SessionManager) SendImmediate(ctx context.Context, req models.CommandRequest) (*models.DispatchResult, error) {
	return sm.dispatch(ctx, req.SessionID, models.DispatchKindImmediate, func(w *urscript.Worker) <-chan urscript.Result {
		return w.SendImmediate(req.Command)
	})
}

func (sm *SessionManager) dispatch(ctx context.Context, sessionID, kind string, op func(w *urscript.Worker) <-chan urscript.Result) (*models.DispatchResult, error) {
	s, exists := sm.lookup(sessionID)
	if !exists {
		return nil, fmt.Errorf("сессия '%s' не найдена: %w", sessionID, apperrors.ErrDataNotFound)
	}

	res, err := urscript.Wait(ctx, op(s.worker))
	if err != nil {
		return nil, fmt.Errorf("ожидание результата отправки прервано: %w", err)
	}

	if s.apply(s.worker.Snapshot(), true) {
		sm.persistStatus(s)
	}

	info := s.snapshot()
	result := &models.DispatchResult{
		SessionID: sessionID,
		Status:    res.Status.String(),
		Endpoint:  endpointInfo(res.Endpoint),
		Timestamp: time.Now().UTC(),
	}

	event := models.DispatchEvent{
		SessionID: sessionID,
		Host:      info.Host,
		Kind:      kind,
		Status:    result.Status,
		Timestamp: result.Timestamp,
	}
	resErr := res.AsError()
	if resErr != nil {
		event.Error = resErr.Error()
		sm.logger.Warn("Dispatch failed", "sessionID", sessionID, "kind", kind, "status", result.Status, "error", resErr)
	} else {
		sm.logger.Info("Dispatch sent", "sessionID", sessionID, "kind", kind, "endpoint", res.Endpoint)
	}
	sm.events.Publish(event)

	return result, resErr
}

func (sm *SessionManager) persistStatus(s *session) {
	info := s.snapshot()
	status := entities.StatusDisconnected
	if info.IsHealthy {
		status = entities.StatusConnected
	}
	if err := sm.dbRepo.UpdateStatus(info.SessionID, status); err != nil {
		sm.logger.Error("Failed to update session status in DB", "sessionID", info.SessionID, "error", err)
	}
}

// Close закрывает все сессии пула. Записи в БД сохраняются для восстановления.
func (sm *SessionManager) Close() {
	sm.mu.Lock()
	sessions := make([]*session, 0, len(sm.pool))
	for id, s := range sm.pool {
		sessions = append(sessions, s)
		delete(sm.pool, id)
	}
	sm.mu.Unlock()

	for _, s := range sessions {
		s.worker.Close()
	}
	sm.logger.Info("All sessions closed", "count", len(sessions))
}

func endpointInfo(ep *urscript.Endpoint) *models.EndpointInfo {
	if ep == nil {
		return nil
	}
	return &models.EndpointInfo{Name: ep.Name, Address: ep.Address()}
}
