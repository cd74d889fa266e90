package panel

import "github.com/dmp-tools/tokenpanel/internal/i18n"

var messages = i18n.Base.Extend(
	map[string]string{
		"title":              "Token",
		"select expire time": "请选择过期时间",
		"expired time":       "过期时间",
		"create button":      "创建",
		"create tip":         "请选择过期时间并创建Token",
		"copy tip":           "请妥善保存Token，离开页面后将无法再次查看",
		"copy success":       "复制成功",
		"usage":              "使用方法",
	},
	map[string]string{
		"title":              "Token",
		"select expire time": "Please select expire time",
		"expired time":       "Expiration",
		"create button":      "Create",
		"create tip":         "Select an expiration and create a token",
		"copy tip":           "Keep the token safe, it cannot be viewed again after leaving this page",
		"copy success":       "Copied",
		"usage":              "Usage",
	},
)
