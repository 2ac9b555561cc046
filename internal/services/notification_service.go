package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"saha-servis/internal/dto"
	"saha-servis/internal/entities"
	"saha-servis/internal/repositories"
	"saha-servis/pkg/constants"
	"saha-servis/pkg/mailer"
	"saha-servis/pkg/metrics"
	"saha-servis/pkg/telegram"
	"saha-servis/pkg/types"
	"saha-servis/pkg/utils"
)

// Message - содержимое одного уведомления.
type Message struct {
	Type          string
	Title         string
	Body          string
	RelatedEntity string
	RelatedID     uint64
}

type NotificationServiceInterface interface {
	Notify(ctx context.Context, recipients []entities.Recipient, msg Message) error
	NotifyManagers(ctx context.Context, msg Message, extraProfileIDs ...uint64) error

	SendWorkOrderNotification(ctx context.Context, workOrder *entities.WorkOrder, event string) error
	SendStockChangeNotification(ctx context.Context, item *entities.StockItem, oldQty, newQty decimal.Decimal) error
	SendToolReturnRequest(ctx context.Context, assignment *entities.ToolAssignment) error
	SendMaintenanceReminder(ctx context.Context, vehicle *entities.Vehicle) error
	SendKaskoReminder(ctx context.Context, vehicle *entities.Vehicle) error

	GetMyNotifications(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Notification], error)
	MarkRead(ctx context.Context, id uint64) error
	MarkAllRead(ctx context.Context) (int64, error)
}

type NotificationService struct {
	repo        repositories.NotificationRepositoryInterface
	profileRepo repositories.ProfileRepositoryInterface
	mail        mailer.Sender
	push        telegram.ServiceInterface
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

func NewNotificationService(
	repo repositories.NotificationRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	mail mailer.Sender,
	push telegram.ServiceInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) *NotificationService {
	return &NotificationService{
		repo:        repo,
		profileRepo: profileRepo,
		mail:        mail,
		push:        push,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// Notify обходит получателей по порядку: письмо, push, запись в notifications.
// Ошибки доставки только логируются. Ошибка записи прерывает цикл, уже записанные строки остаются.
func (s *NotificationService) Notify(ctx context.Context, recipients []entities.Recipient, msg Message) error {
	for _, r := range recipients {
		s.sendEmail(ctx, r, msg)
		s.sendPush(ctx, r, msg)

		audit := entities.Notification{
			RecipientID: r.ProfileID,
			Type:        msg.Type,
			Title:       msg.Title,
			Message:     msg.Body,
		}
		if msg.RelatedEntity != "" {
			audit.RelatedEntity = null.StringFrom(msg.RelatedEntity)
		}
		if msg.RelatedID > 0 {
			audit.RelatedID = null.Int64From(int64(msg.RelatedID))
		}
		if _, err := s.repo.InsertNotification(ctx, audit); err != nil {
			s.logger.Error("Не удалось записать уведомление",
				zap.Uint64("recipientID", r.ProfileID), zap.String("type", msg.Type), zap.Error(err))
			return fmt.Errorf("запись уведомления для профиля %d: %w", r.ProfileID, err)
		}
	}
	return nil
}

func (s *NotificationService) sendEmail(ctx context.Context, r entities.Recipient, msg Message) {
	if r.Email == "" {
		s.metrics.ObserveNotification("email", "skipped")
		return
	}
	if err := s.mail.Send(ctx, r.Email, msg.Title, msg.Body); err != nil {
		s.logger.Warn("Письмо не доставлено", zap.String("to", r.Email), zap.Error(err))
		s.metrics.ObserveNotification("email", "error")
		return
	}
	s.metrics.ObserveNotification("email", "ok")
}

func (s *NotificationService) sendPush(ctx context.Context, r entities.Recipient, msg Message) {
	if !r.TelegramChatID.Valid {
		s.metrics.ObserveNotification("push", "skipped")
		return
	}
	if err := s.push.SendMessage(ctx, r.TelegramChatID.Int64, msg.Title+"\n\n"+msg.Body); err != nil {
		s.logger.Warn("Push не доставлен", zap.Uint64("profileID", r.ProfileID), zap.Error(err))
		s.metrics.ObserveNotification("push", "error")
		return
	}
	s.metrics.ObserveNotification("push", "ok")
}

// NotifyManagers - активные admin/yonetici плюс указанные профили (без повторов).
func (s *NotificationService) NotifyManagers(ctx context.Context, msg Message, extraProfileIDs ...uint64) error {
	managers, err := s.profileRepo.FindActiveByRoles(ctx, constants.ManagerRoles)
	if err != nil {
		return err
	}

	seen := make(map[uint64]bool, len(managers)+len(extraProfileIDs))
	recipients := make([]entities.Recipient, 0, len(managers)+len(extraProfileIDs))
	for i := range managers {
		seen[managers[i].ID] = true
		recipients = append(recipients, managers[i].AsRecipient())
	}
	for _, id := range extraProfileIDs {
		if id == 0 || seen[id] {
			continue
		}
		profile, err := s.profileRepo.FindByID(ctx, id)
		if err != nil {
			s.logger.Warn("Получатель уведомления не найден", zap.Uint64("profileID", id), zap.Error(err))
			continue
		}
		if !profile.IsActive {
			continue
		}
		seen[id] = true
		recipients = append(recipients, profile.AsRecipient())
	}

	return s.Notify(ctx, recipients, msg)
}

func (s *NotificationService) SendWorkOrderNotification(ctx context.Context, wo *entities.WorkOrder, event string) error {
	msg := Message{
		Type:          constants.NotificationWorkOrder,
		Title:         fmt.Sprintf("İş emri #%d %s", wo.ID, event),
		Body:          workOrderBody(wo),
		RelatedEntity: constants.RelatedEntityWorkOrder,
		RelatedID:     wo.ID,
	}
	var assignee uint64
	if wo.AssignedTo.Valid {
		assignee = uint64(wo.AssignedTo.Int64)
	}
	return s.NotifyManagers(ctx, msg, assignee)
}

func workOrderBody(wo *entities.WorkOrder) string {
	body := fmt.Sprintf("%s\nMüşteri: %s\nDurum: %s\nÖncelik: %s", wo.Title, wo.CustomerName, wo.Status, wo.Priority)
	if wo.AssigneeName.Valid {
		body += "\nAtanan: " + wo.AssigneeName.String
	}
	if wo.ScheduledDate.Valid {
		body += "\nPlanlanan tarih: " + wo.ScheduledDate.Time.Format("2006-01-02 15:04")
	}
	return body
}

func (s *NotificationService) SendStockChangeNotification(ctx context.Context, item *entities.StockItem, oldQty, newQty decimal.Decimal) error {
	body := fmt.Sprintf("%s / %s: %s → %s", item.WarehouseName, item.ItemName, oldQty.String(), newQty.String())
	if item.IsLow() {
		body += fmt.Sprintf("\nMinimum stok seviyesinin (%s) altında!", item.MinStockLevel.Decimal.String())
	}
	return s.NotifyManagers(ctx, Message{
		Type:          constants.NotificationStockChange,
		Title:         "Stok değişikliği",
		Body:          body,
		RelatedEntity: constants.RelatedEntityStock,
		RelatedID:     item.ID,
	})
}

func (s *NotificationService) SendToolReturnRequest(ctx context.Context, a *entities.ToolAssignment) error {
	return s.NotifyManagers(ctx, Message{
		Type:          constants.NotificationToolReturn,
		Title:         "Zimmet iade talebi",
		Body:          fmt.Sprintf("%s, %s (%s) aletinin iadesini talep etti.", a.EmployeeName, a.ToolName, a.ToolSerial),
		RelatedEntity: constants.RelatedEntityAssignment,
		RelatedID:     a.ID,
	})
}

func (s *NotificationService) SendMaintenanceReminder(ctx context.Context, v *entities.Vehicle) error {
	body := fmt.Sprintf("%s plakalı aracın bakımı yaklaşıyor.", v.Plate)
	if v.NextMaintenanceDate.Valid {
		days := utils.DaysUntil(s.now(), v.NextMaintenanceDate.Time)
		body += fmt.Sprintf("\nBakım tarihi: %s (%s)", v.NextMaintenanceDate.Time.Format(utils.DateLayout), utils.FormatDaysLeft(days))
	}
	if v.NextMaintenanceKm.Valid {
		body += fmt.Sprintf("\nGüncel km: %d, bakım km: %d", v.CurrentKm, v.NextMaintenanceKm.Int)
	}
	return s.NotifyManagers(ctx, Message{
		Type:          constants.NotificationMaintenance,
		Title:         "Araç bakım hatırlatması: " + v.Plate,
		Body:          body,
		RelatedEntity: constants.RelatedEntityVehicle,
		RelatedID:     v.ID,
	})
}

func (s *NotificationService) SendKaskoReminder(ctx context.Context, v *entities.Vehicle) error {
	days := utils.DaysUntil(s.now(), v.KaskoExpiryDate.Time)
	return s.NotifyManagers(ctx, Message{
		Type:  constants.NotificationKasko,
		Title: "Kasko hatırlatması: " + v.Plate,
		Body: fmt.Sprintf("%s plakalı aracın kasko poliçesi %s tarihinde bitiyor (%s).",
			v.Plate, v.KaskoExpiryDate.Time.Format(utils.DateLayout), utils.FormatDaysLeft(days)),
		RelatedEntity: constants.RelatedEntityVehicle,
		RelatedID:     v.ID,
	})
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, filter types.Filter) (*dto.PaginatedResponse[entities.Notification], error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	list, total, err := s.repo.GetByRecipient(ctx, profileID, filter)
	if err != nil {
		return nil, err
	}
	return dto.NewPaginatedResponse(list, total, filter), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id uint64) error {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, profileID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	profileID, err := utils.GetUserIDFromCtx(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.MarkAllRead(ctx, profileID)
}
