package notify

import (
	"bytes"
	"fmt"
	"time"

	"trainingcenter/internal/app/config"
	"trainingcenter/internal/app/ds"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v4"
)

// Телеграм-нотификатор: текстовые сообщения клиенту и администратору и
// отправка документа предложения. Ошибки отправки возвращаются вызывающему,
// решение о том, фатальны ли они, принимает менеджер жизненного цикла.

type TelegramNotifier struct {
	bot       *tele.Bot
	webAppURL string
}

func NewTelegramNotifier(cfg config.TelegramConfig) (*TelegramNotifier, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, webAppURL: cfg.WebAppURL}, nil
}

// SendText отправляет HTML-сообщение, при необходимости с кнопкой перехода
// к заявкам мини-приложения.
func (n *TelegramNotifier) SendText(recipientID int64, text string, withKeyboard bool) error {
	opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
	if withKeyboard && n.webAppURL != "" {
		opts.ReplyMarkup = n.applicationsKeyboard()
	}

	if _, err := n.bot.Send(tele.ChatID(recipientID), text, opts); err != nil {
		return fmt.Errorf("failed to send message to %d: %w", recipientID, err)
	}
	return nil
}

// SendDocument отправляет документ из памяти.
func (n *TelegramNotifier) SendDocument(recipientID int64, filename string, data []byte) error {
	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: filename,
	}

	if _, err := n.bot.Send(tele.ChatID(recipientID), doc); err != nil {
		return fmt.Errorf("failed to send document to %d: %w", recipientID, err)
	}
	return nil
}

func (n *TelegramNotifier) applicationsKeyboard() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("📬 Заявки", n.webAppURL)))
	return markup
}

// UserRegistry — регистрация клиента при первом обращении к боту.
type UserRegistry interface {
	EnsureUser(telegramID int64, firstName, username string) (*ds.User, error)
}

// RegisterHandlers подключает обработчик /start: клиент попадает в базу до
// подачи первой заявки и получает кнопку перехода в мини-приложение.
func (n *TelegramNotifier) RegisterHandlers(users UserRegistry) {
	n.bot.Handle("/start", func(c tele.Context) error {
		sender := c.Sender()
		if _, err := users.EnsureUser(sender.ID, sender.FirstName, sender.Username); err != nil {
			logrus.Errorf("failed to register user %d: %v", sender.ID, err)
			return c.Send("Не удалось выполнить регистрацию, попробуйте позже")
		}

		text := fmt.Sprintf(
			"Здравствуйте, <b>%s</b>!\n\n"+
				"Наш учебный центр готовит коммерческие предложения на обучение сотрудников. "+
				"Оформите заявку по кнопке ниже — и мы пришлём расчёт стоимости.",
			sender.FirstName,
		)
		opts := &tele.SendOptions{ParseMode: tele.ModeHTML}
		if n.webAppURL != "" {
			opts.ReplyMarkup = n.applicationsKeyboard()
		}
		return c.Send(text, opts)
	})
}

// Start запускает long polling бота. Блокирующий вызов.
func (n *TelegramNotifier) Start() {
	n.bot.Start()
}

// Stop останавливает long polling.
func (n *TelegramNotifier) Stop() {
	n.bot.Stop()
}
