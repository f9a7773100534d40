package migrations

import (
	"github.com/go-pg/migrations/v8"
	log "github.com/sirupsen/logrus"
)

func CreateVideo(col *migrations.Collection) {
	col.MustRegisterTx(func(db migrations.DB) error {
		log.Info("creating table video")
		_, err := db.Exec(`
			CREATE TABLE video (
				video_id   uuid PRIMARY KEY,
				name       varchar(200) NOT NULL,
				url        varchar(400) NOT NULL,
				notes      text,
				youtube_id varchar(40) NOT NULL,
				created_at timestamptz NOT NULL DEFAULT now(),
				CONSTRAINT video_youtube_id_key UNIQUE (youtube_id)
			);
			CREATE INDEX video_lower_name_idx ON video (lower(name));
		`)
		return err
	}, func(db migrations.DB) error {
		log.Info("dropping table video")
		_, err := db.Exec(`DROP TABLE video`)
		return err
	})
}
