package content

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"openflexSite/internal/database"
)

// Store 封装六类站点内容的读写。除 ReplaceServices 外，
// 每个操作独立提交，不跨实体开事务。
// 行缺失统一以 gorm.ErrRecordNotFound 表示，由调用方判定是否算错误。
type Store struct {
	db *gorm.DB
}

// NewStore 构造 Store。
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// HeroInput 是 Hero 的完整替换载荷。
type HeroInput struct {
	Title    string
	Subtitle string
	ImageURL string
}

// AboutInput 是 About 的完整替换载荷。
type AboutInput struct {
	Title       string
	Description string
	ImageURL    string
}

// ServiceInput 是单条 Service 的写入载荷。
type ServiceInput struct {
	Title       string
	Description string
	Features    string
	ImageURL    string
}

// ClientInput 是单条 Client 的写入载荷。Order 为 nil 时
// 由 CreateClient 取当前行数作为默认排序值（追加到末尾）。
type ClientInput struct {
	Name    string
	LogoURL string
	Order   *int
}

// FAQInput 是单条 FAQ 的写入载荷。
type FAQInput struct {
	Question string
	Answer   string
}

// Hero 返回首屏内容，缺失时返回 gorm.ErrRecordNotFound。
func (s *Store) Hero(ctx context.Context) (*database.Hero, error) {
	var hero database.Hero
	if err := s.db.WithContext(ctx).First(&hero).Error; err != nil {
		return nil, err
	}
	return &hero, nil
}

// SaveHero 整体替换首屏内容：已有行则原地更新（ID 不变），否则创建。
func (s *Store) SaveHero(ctx context.Context, in HeroInput) (*database.Hero, error) {
	var hero database.Hero
	err := s.db.WithContext(ctx).First(&hero).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"title":     in.Title,
			"subtitle":  in.Subtitle,
			"image_url": in.ImageURL,
		}
		if err := s.db.WithContext(ctx).Model(&hero).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update hero: %w", err)
		}
		hero.Title, hero.Subtitle, hero.ImageURL = in.Title, in.Subtitle, in.ImageURL
		return &hero, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		hero = database.Hero{Title: in.Title, Subtitle: in.Subtitle, ImageURL: in.ImageURL}
		if err := s.db.WithContext(ctx).Create(&hero).Error; err != nil {
			return nil, fmt.Errorf("create hero: %w", err)
		}
		return &hero, nil
	default:
		return nil, fmt.Errorf("query hero: %w", err)
	}
}

// About 返回关于内容，缺失时返回 gorm.ErrRecordNotFound。
func (s *Store) About(ctx context.Context) (*database.About, error) {
	var about database.About
	if err := s.db.WithContext(ctx).First(&about).Error; err != nil {
		return nil, err
	}
	return &about, nil
}

// SaveAbout 整体替换关于内容，语义同 SaveHero。
func (s *Store) SaveAbout(ctx context.Context, in AboutInput) (*database.About, error) {
	var about database.About
	err := s.db.WithContext(ctx).First(&about).Error
	switch {
	case err == nil:
		updates := map[string]any{
			"title":       in.Title,
			"description": in.Description,
			"image_url":   in.ImageURL,
		}
		if err := s.db.WithContext(ctx).Model(&about).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update about: %w", err)
		}
		about.Title, about.Description, about.ImageURL = in.Title, in.Description, in.ImageURL
		return &about, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		about = database.About{Title: in.Title, Description: in.Description, ImageURL: in.ImageURL}
		if err := s.db.WithContext(ctx).Create(&about).Error; err != nil {
			return nil, fmt.Errorf("create about: %w", err)
		}
		return &about, nil
	default:
		return nil, fmt.Errorf("query about: %w", err)
	}
}

// Contact 返回联系方式，缺失时返回 gorm.ErrRecordNotFound。
func (s *Store) Contact(ctx context.Context) (*database.Contact, error) {
	var contact database.Contact
	if err := s.db.WithContext(ctx).First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// SaveContact 以固定 ID=1 做 upsert，保证表中始终只有这一行。
// 字段必填校验由 API 层负责。
func (s *Store) SaveContact(ctx context.Context, email, phone string) (*database.Contact, error) {
	contact := database.Contact{ID: 1, Email: email, Phone: phone}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "phone"}),
		}).
		Create(&contact).Error
	if err != nil {
		return nil, fmt.Errorf("upsert contact: %w", err)
	}
	return &contact, nil
}

// ListServices 按插入顺序（主键升序）返回全部服务。
func (s *Store) ListServices(ctx context.Context) ([]database.Service, error) {
	services := make([]database.Service, 0)
	if err := s.db.WithContext(ctx).Order("id asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// CreateService 新增一条服务。
func (s *Store) CreateService(ctx context.Context, in ServiceInput) (*database.Service, error) {
	service := database.Service{
		Title:       in.Title,
		Description: in.Description,
		Features:    in.Features,
		ImageURL:    in.ImageURL,
	}
	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &service, nil
}

// UpdateService 按 ID 更新，行缺失返回 gorm.ErrRecordNotFound。
func (s *Store) UpdateService(ctx context.Context, id uint, in ServiceInput) (*database.Service, error) {
	var service database.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	updates := map[string]any{
		"title":       in.Title,
		"description": in.Description,
		"features":    in.Features,
		"image_url":   in.ImageURL,
	}
	if err := s.db.WithContext(ctx).Model(&service).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update service %d: %w", id, err)
	}
	service.Title, service.Description = in.Title, in.Description
	service.Features, service.ImageURL = in.Features, in.ImageURL
	return &service, nil
}

// DeleteService 按 ID 删除，行缺失返回 gorm.ErrRecordNotFound。
func (s *Store) DeleteService(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&database.Service{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete service %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAllServices 清空服务表。
func (s *Store) DeleteAllServices(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&database.Service{}).Error; err != nil {
		return fmt.Errorf("delete all services: %w", err)
	}
	return nil
}

// ReplaceServices 在单个事务内整体替换服务集合：
// 清空后按提交顺序重建，任何一步失败则整体回滚。
func (s *Store) ReplaceServices(ctx context.Context, inputs []ServiceInput) ([]database.Service, error) {
	services := make([]database.Service, 0, len(inputs))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&database.Service{}).Error; err != nil {
			return fmt.Errorf("delete all services: %w", err)
		}
		for _, in := range inputs {
			service := database.Service{
				Title:       in.Title,
				Description: in.Description,
				Features:    in.Features,
				ImageURL:    in.ImageURL,
			}
			if err := tx.Create(&service).Error; err != nil {
				return fmt.Errorf("create service %q: %w", in.Title, err)
			}
			services = append(services, service)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return services, nil
}

// ListClients 按展示顺序返回客户：display_order 升序，同序按主键升序。
func (s *Store) ListClients(ctx context.Context) ([]database.Client, error) {
	clients := make([]database.Client, 0)
	if err := s.db.WithContext(ctx).
		Order("display_order asc").
		Order("id asc").
		Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// CreateClient 新增客户。未指定 Order 时取当前行数，使新行排在末尾。
func (s *Store) CreateClient(ctx context.Context, in ClientInput) (*database.Client, error) {
	order := 0
	if in.Order != nil {
		order = *in.Order
	} else {
		var count int64
		if err := s.db.WithContext(ctx).Model(&database.Client{}).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("count clients: %w", err)
		}
		order = int(count)
	}

	client := database.Client{Name: in.Name, LogoURL: in.LogoURL, Order: order}
	if err := s.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return &client, nil
}

// UpdateClient 按 ID 更新，行缺失返回 gorm.ErrRecordNotFound。
func (s *Store) UpdateClient(ctx context.Context, id uint, name, logoURL string, order int) (*database.Client, error) {
	var client database.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	updates := map[string]any{
		"name":          name,
		"logo_url":      logoURL,
		"display_order": order,
	}
	if err := s.db.WithContext(ctx).Model(&client).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update client %d: %w", id, err)
	}
	client.Name, client.LogoURL, client.Order = name, logoURL, order
	return &client, nil
}

// DeleteClient 按 ID 删除，行缺失返回 gorm.ErrRecordNotFound。
func (s *Store) DeleteClient(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&database.Client{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete client %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListFAQs 按创建顺序（主键升序）返回全部 FAQ。
func (s *Store) ListFAQs(ctx context.Context) ([]database.FAQ, error) {
	faqs := make([]database.FAQ, 0)
	if err := s.db.WithContext(ctx).Order("id asc").Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	return faqs, nil
}

// CreateFAQ 新增一条 FAQ。
func (s *Store) CreateFAQ(ctx context.Context, in FAQInput) (*database.FAQ, error) {
	faq := database.FAQ{Question: in.Question, Answer: in.Answer}
	if err := s.db.WithContext(ctx).Create(&faq).Error; err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return &faq, nil
}

// UpdateFAQ 按 ID 更新，行缺失返回 gorm.ErrRecordNotFound。
func (s *Store) UpdateFAQ(ctx context.Context, id uint, in FAQInput) (*database.FAQ, error) {
	var faq database.FAQ
	if err := s.db.WithContext(ctx).First(&faq, id).Error; err != nil {
		return nil, err
	}
	updates := map[string]any{"question": in.Question, "answer": in.Answer}
	if err := s.db.WithContext(ctx).Model(&faq).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update faq %d: %w", id, err)
	}
	faq.Question, faq.Answer = in.Question, in.Answer
	return &faq, nil
}

// DeleteFAQ 按 ID 删除，行缺失返回 gorm.ErrRecordNotFound。
// 删除不会重排其余行的 ID。
func (s *Store) DeleteFAQ(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&database.FAQ{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete faq %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
