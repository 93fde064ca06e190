package models

import "time"

// Designation is a back-office role (Admin, Manager, ...).
type Designation struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;type:varchar(255);not null;uniqueIndex" json:"name"`
}

func (Designation) TableName() string {
	return "designation"
}

// Employee is a back-office operator account. Password always stores a bcrypt
// hash; plaintext never reaches the persistence layer.
type Employee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email    string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	CNIC     string `gorm:"column:cnic;type:varchar(15);not null;uniqueIndex" json:"cnic"`
	Phone    string `gorm:"column:phone;type:varchar(32)" json:"phone"`

	DesignationID uint         `gorm:"column:designation_id;not null" json:"designation_id"`
	Designation   *Designation `gorm:"foreignKey:DesignationID;constraint:OnDelete:CASCADE" json:"designation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employee"
}

// EmployeeAddress allows one employee to carry multiple addresses.
type EmployeeAddress struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"column:employee_id;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Address    string    `gorm:"column:address;type:text;not null" json:"address"`
}

func (EmployeeAddress) TableName() string {
	return "employee_address"
}

// EmployeeLoginHistory records one login session. SessionSeconds stays nil
// until logout closes the session.
type EmployeeLoginHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"column:employee_id;not null;index" json:"employee_id"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	LoginAt    time.Time `gorm:"column:login_at;not null" json:"login_at"`
	IPAddress  string    `gorm:"column:ip_address;type:varchar(50)" json:"ip_address"`
	DeviceInfo string    `gorm:"column:device_info;type:varchar(255)" json:"device_info"`

	SessionSeconds *int64 `gorm:"column:session_seconds" json:"session_seconds"`
}

func (EmployeeLoginHistory) TableName() string {
	return "employee_login_history"
}
