package i18n

import "strings"

// Lang is a UI language understood by the management platform.
type Lang string

const (
	ZH Lang = "zh"
	EN Lang = "en"
)

// Header carries the caller's language on every request.
const Header = "X-I18n-Lang"

// ParseLang maps a header value to a Lang. Anything unrecognized is zh,
// which is what the platform backend assumes.
func ParseLang(s string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN
	default:
		return ZH
	}
}

// Messages is a pair of translation tables keyed by the English phrase.
type Messages struct {
	zh map[string]string
	en map[string]string
}

// NewMessages builds a table from the given translations. The maps are copied.
func NewMessages(zh, en map[string]string) *Messages {
	m := &Messages{
		zh: make(map[string]string, len(zh)),
		en: make(map[string]string, len(en)),
	}
	for k, v := range zh {
		m.zh[k] = v
	}
	for k, v := range en {
		m.en[k] = v
	}
	return m
}

// Extend returns a new table holding m's entries plus the given ones.
// Entries passed here win over existing ones.
func (m *Messages) Extend(zh, en map[string]string) *Messages {
	out := NewMessages(m.zh, m.en)
	for k, v := range zh {
		out.zh[k] = v
	}
	for k, v := range en {
		out.en[k] = v
	}
	return out
}

// Get returns the translation of key, or key itself when no entry exists.
func (m *Messages) Get(lang Lang, key string) string {
	table := m.zh
	if lang == EN {
		table = m.en
	}
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// Has reports whether both languages define key.
func (m *Messages) Has(key string) bool {
	_, zh := m.zh[key]
	_, en := m.en[key]
	return zh && en
}

// Base holds the phrases shared by every component of the platform.
var Base = NewMessages(
	map[string]string{
		"bad request":       "请求错误",
		"create success":    "创建成功",
		"create fail":       "创建失败",
		"delete success":    "删除成功",
		"delete fail":       "删除失败",
		"query success":     "查询成功",
		"query fail":        "查询失败",
		"permission needed": "权限不足",
		"token fail":        "Token校验失败",
		"login success":     "登录成功",
		"user not exist":    "用户不存在",
		"wrong password":    "密码错误",
		"too many requests": "请求过于频繁",
		"server error":      "服务器错误",
	},
	map[string]string{
		"bad request":       "Bad Request",
		"create success":    "Create Success",
		"create fail":       "Create Fail",
		"delete success":    "Delete Success",
		"delete fail":       "Delete Fail",
		"query success":     "Query Success",
		"query fail":        "Query Fail",
		"permission needed": "Permission Needed",
		"token fail":        "Token Verification Failed",
		"login success":     "Login Success",
		"user not exist":    "User Not Exist",
		"wrong password":    "Wrong Password",
		"too many requests": "Too Many Requests",
		"server error":      "Server Error",
	},
)
