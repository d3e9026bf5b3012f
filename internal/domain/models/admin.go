package models

// Admin represents the seeded administrator credential record.
// 持久化在 admin.json 中，运行期间只读。
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password"` // bcrypt 哈希，响应中不返回该记录本身
	Role     string `json:"role"`     // Role: admin
}
