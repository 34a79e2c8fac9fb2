package model

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleCustomer UserRole = "customer"
)

type User struct {
	UserID    uint     `json:"user_id" gorm:"primaryKey"`
	UserName  string   `json:"user_name" gorm:"not null;type:varchar(50)"`
	UserEmail string   `json:"user_email" gorm:"unique;not null;type:varchar(100)"`
	Role      UserRole `json:"role" gorm:"not null;type:varchar(20);default:'customer'"`
	School    string   `json:"school" gorm:"type:varchar(100)"`
	BaseModel
}
