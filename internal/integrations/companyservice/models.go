package companyservice

// Company модель компании из CompanyService
type Company struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
	ManagerIDs  []int64 `json:"manager_ids"`
}

// IsManager проверяет, что пользователь входит в список менеджеров компании
func (c *Company) IsManager(userID int64) bool {
	for _, managerID := range c.ManagerIDs {
		if managerID == userID {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от CompanyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
