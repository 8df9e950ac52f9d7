// access - пакет для проверки прав доступа пользователя к ресурсу.
package access

import "github.com/abezemskiy/punchclock/internal/common/identity/tools/token"

// Allowed - функция для проверки, что пользователь имеет право действовать от имени пользователя с идентификатором userID.
// Действие разрешено, если пользователь действует от своего имени или является администратором.
func Allowed(claims token.Claims, userID int64) bool {
	return claims.UserID == userID || claims.IsAdmin
}
