// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a bank customer in the database
	UID      string `gorm:"column:uid;primaryKey" json:"uid"`          // Unique user ID (primary key)
	Uname    string `gorm:"column:uname;unique;not null" json:"uname"` // Username (must be unique, used for login)
	Password string `gorm:"not null" json:"-"`                         // Hashed password (cannot be null)
	Email    string `gorm:"not null" json:"email"`                     // User's email
	Phone    string `gorm:"not null" json:"phone"`                     // User's phone number
	Role     string `gorm:"not null" json:"role"`                      // User role (only "customer" is accepted)
	Balance  int64  `gorm:"not null;default:100000" json:"balance"`    // Account balance, starts at 100000
}
