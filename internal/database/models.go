package database

// 站点内容模型。六张表彼此独立，不存在跨表外键；
// 图片统一以 URL 字符串内嵌，不追踪引用关系。

// Hero 表示首屏内容（至多一行）。
type Hero struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Title    string `gorm:"size:255" json:"title"`
	Subtitle string `gorm:"size:512" json:"subtitle"`
	ImageURL string `gorm:"size:512;column:image_url" json:"imageUrl"`
}

// About 表示「关于我们」内容（至多一行）。
type About struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:512;column:image_url" json:"imageUrl"`
}

// Contact 表示联系方式，行 ID 固定为 1。
type Contact struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:64" json:"phone"`
}

// Service 表示一项业务介绍。Features 为逗号拼接的纯文本。
type Service struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Features    string `gorm:"type:text" json:"features"`
	ImageURL    string `gorm:"size:512;column:image_url" json:"imageUrl"`
}

// Client 表示合作客户 Logo，按 Order 升序展示。
// order 是 SQL 保留字，列名改用 display_order。
type Client struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	LogoURL string `gorm:"size:512;column:logo_url" json:"logoUrl"`
	Order   int    `gorm:"column:display_order;index" json:"order"`
}

// FAQ 表示常见问题，按 ID 升序（即创建顺序）展示。
type FAQ struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Question string `gorm:"type:text" json:"question"`
	Answer   string `gorm:"type:text" json:"answer"`
}

// TableName 固定表名，避免 GORM 推断出 f_a_qs 这类形式。
func (FAQ) TableName() string { return "faqs" }
