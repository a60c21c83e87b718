package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	Username       string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email          string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string  `gorm:"type:varchar(255);not null"`
	ImageURL       string  `gorm:"type:varchar(500);not null"`
	HeaderImageURL string  `gorm:"type:varchar(500);not null"`
	Bio            *string `gorm:"type:text"`
	Location       *string `gorm:"type:varchar(255)"`
	CreatedAt      int64   `gorm:"autoCreateTime;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// MessageModel é o model GORM para mensagens.
// Timestamp em milissegundos Unix para ordenar mensagens criadas no mesmo segundo.
type MessageModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Text      string    `gorm:"type:varchar(140);not null"`
	Timestamp int64     `gorm:"column:posted_at;not null;index"`
	UserID    string    `gorm:"type:uuid;not null;index"`
	User      UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// FollowModel é a tabela de junção de follows
type FollowModel struct {
	FollowerID string    `gorm:"type:uuid;primaryKey"`
	FollowedID string    `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  int64     `gorm:"autoCreateTime"`
	Follower   UserModel `gorm:"foreignKey:FollowerID;constraint:OnDelete:RESTRICT"`
	Followed   UserModel `gorm:"foreignKey:FollowedID;constraint:OnDelete:RESTRICT"`
}

func (FollowModel) TableName() string {
	return "follows"
}

// LikeModel é a tabela de junção de likes
type LikeModel struct {
	ID        string       `gorm:"type:uuid;primaryKey"`
	UserID    string       `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_message"`
	MessageID string       `gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_message;index"`
	CreatedAt int64        `gorm:"autoCreateTime"`
	User      UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Message   MessageModel `gorm:"foreignKey:MessageID;constraint:OnDelete:RESTRICT"`
}

func (LikeModel) TableName() string {
	return "likes"
}

// AllModels lista os models na ordem de criação do schema
func AllModels() []any {
	return []any{&UserModel{}, &MessageModel{}, &FollowModel{}, &LikeModel{}}
}
