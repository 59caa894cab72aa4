package email

// Встроенные шаблоны уведомлений. Используются, когда на диске нет
// одноименного файла шаблона.
var defaultTemplates = map[string]string{
	"invitation_sent": `<html><body>
<h2>Новое приглашение</h2>
<p>Здравствуйте, {{.RecipientName}}!</p>
<p>Вас пригласили на мероприятие <b>{{.EventName}}</b>.</p>
<p>Начало: {{.StartTime}}<br>Место: {{.Location}}</p>
<p>Пожалуйста, примите или отклоните приглашение в личном кабинете.</p>
</body></html>`,

	"invitation_status_updated": `<html><body>
<h2>Ответ на приглашение</h2>
<p>Здравствуйте, {{.OrganizerName}}!</p>
<p>Подрядчик {{.ContractorName}} изменил статус приглашения на мероприятие
<b>{{.EventName}}</b>: <b>{{.Status}}</b>.</p>
</body></html>`,

	"invitation_confirmed": `<html><body>
<h2>Участие подтверждено</h2>
<p>Здравствуйте, {{.RecipientName}}!</p>
<p>Организатор подтвердил ваше участие в мероприятии <b>{{.EventName}}</b>.</p>
<p>Начало: {{.StartTime}}<br>Место: {{.Location}}</p>
</body></html>`,

	"invitation_canceled": `<html><body>
<h2>Приглашение отменено</h2>
<p>Здравствуйте, {{.RecipientName}}!</p>
<p>Ваше приглашение на мероприятие <b>{{.EventName}}</b> было отменено организатором.</p>
</body></html>`,

	"event_deleted": `<html><body>
<h2>Мероприятие отменено</h2>
<p>Здравствуйте, {{.RecipientName}}!</p>
<p>Мероприятие <b>{{.EventName}}</b>, на которое вы были приглашены, отменено.</p>
</body></html>`,

	"contractor_approved": `<html><body>
<h2>Заявка одобрена</h2>
<p>Здравствуйте, {{.Name}}!</p>
<p>Ваша заявка подрядчика одобрена. Аккаунт активирован, вы можете войти в систему.</p>
</body></html>`,

	"contractor_rejected": `<html><body>
<h2>Заявка отклонена</h2>
<p>Здравствуйте, {{.Name}}!</p>
<p>К сожалению, ваша заявка подрядчика отклонена администратором.</p>
</body></html>`,
}
