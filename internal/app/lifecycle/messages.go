package lifecycle

import (
	"fmt"
	"strings"

	"trainingcenter/internal/app/ds"
	"trainingcenter/internal/app/lookup"
	"trainingcenter/internal/app/pricing"
)

// Тексты уведомлений. Сообщения уходят с HTML-разметкой Telegram.

func composeServicesBlock(services []ds.ServiceDraft, names *lookup.Names) string {
	lines := make([]string, len(services))
	for i, s := range services {
		name := pricing.ComposeName(names.Programs[s.TrainingProgramID], s.TrainingRank)
		lines[i] = fmt.Sprintf("    ➤ %s в количестве %d человек", name, s.PeopleCount)
	}
	return strings.Join(lines, "\n")
}

func userSubmittedMessage(firstName string, applicationID uint, companyName, servicesBlock string) string {
	return fmt.Sprintf(
		"🎉 <b>%s, ваша заявка успешно принята!</b>\n\n"+
			"📬 <b>Регистрационный номер заявки:</b> %d\n"+
			"💬 <b>Информация о коммерческом предложении:</b>\n"+
			"🏢 <b>Компания:</b> %s\n"+
			"🎓 <b>Обучение:</b>\n"+
			"%s\n\n"+
			"Спасибо за выбор нашего учебного центра! ✨",
		firstName, applicationID, companyName, servicesBlock,
	)
}

func adminSubmittedMessage(applicationID uint, draft *ds.ApplicationDraft, user *ds.User, servicesBlock string) string {
	return fmt.Sprintf(
		"🔔 <b>Новая запись!</b>\n\n"+
			"📄 <b>Детали заявки:</b>\n"+
			"📬 <b>Регистрационный номер заявки:</b> %d\n"+
			"🏢 <b>Компания:</b> %s\n"+
			"👤 Имя клиента: %s\n"+
			"💬 Телеграм клиента: @%s\n"+
			"📞 Телефон клиента: %s\n"+
			"📧 Почта клиента: %s\n"+
			"🎓 <b>Обучение:</b>\n"+
			"%s\n",
		applicationID, draft.CompanyName, user.FirstName, user.Username,
		draft.PhoneNumber, draft.Email, servicesBlock,
	)
}

func userPricedMessage(applicationID uint, total int64) string {
	return fmt.Sprintf(
		"🎉 <b>По вашей заявке под номером №%d подготовлено предложение!</b>\n\n"+
			"💰 <b>Сумма контракта составит:</b> %d\n"+
			"В ближайшее время вы получите подписанное коммерческое предложение на указанную почту. "+
			"Спасибо за выбор нашего учебного центра! ✨",
		applicationID, total,
	)
}
