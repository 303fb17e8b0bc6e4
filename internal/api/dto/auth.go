package dto

// SignupForm 注册表单
type SignupForm struct {
	Username  string `form:"username" validate:"required,min=1,max=150"`
	Email     string `form:"email" validate:"required,email"`
	FirstName string `form:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" validate:"max=150"`
	Password  string `form:"password" validate:"required,min=6,max=128"`
	Password2 string `form:"password2" validate:"required,eqfield=Password"`
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}
