package service

import (
	"errors"
)

var (
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserExist         = errors.New("用户名已被占用")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrGroupNotFound     = errors.New("小组不存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrNotAuthor         = errors.New("只有作者可以编辑")
	ErrTextRequired      = errors.New("正文不能为空")
	ErrTextTooLong       = errors.New("正文超出长度限制")
	ErrFollowSelf        = errors.New("不能订阅自己")
)
