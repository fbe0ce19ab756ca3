package domain

import "time"

// NormalizeDate приводит дату к полуночи UTC
// Все даты заезда/выезда храним и сравниваем только по дню:
// количество ночей всегда целое, дробных ночей не бывает
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween возвращает количество ночей между двумя датами
// Обе даты нормализуются к полуночи перед вычислением
func NightsBetween(checkIn, checkOut time.Time) int {
	in := NormalizeDate(checkIn)
	out := NormalizeDate(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// IntervalsOverlap проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Пересечение есть только при строгих неравенствах:
// бронирование, заканчивающееся в день заезда другого, НЕ пересекается с ним
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
