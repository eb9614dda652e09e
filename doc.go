/*
The package hypr-monitor-notify is a tool to watch Hyprland for monitors being
attached or detached, running a script for each with the monitor name as its
only argument. Designed to run as part of a Hyprland session.

Say you want to move your workspaces over when you plug in an external
display. Write a script that does it, make it executable, and start the
notifier from your hyprland.conf..

    exec-once = hypr-monitor-notify ~/bin/monitor-added ~/bin/monitor-removed

When a monitor shows up the first script gets run, something like..

    ~/bin/monitor-added HDMI-A-1

The second script is optional. Scripts are started and left to run on their
own, their exit status is never looked at. A script that is missing or is not
executable (by its owner) gets an error printed and that event is skipped.

The notifier reads the compositor event socket found through the
HYPRLAND_INSTANCE_SIGNATURE environment variable, looking first in
$XDG_RUNTIME_DIR/hypr and then in /tmp/hypr. It exits (always with status 1)
when Hyprland is not running or when the socket goes away.

An optional TOML config file can live in..

	$XDG_CONFIG_HOME/hypr-monitor-notify/config.toml

or wherever the HyprMonitorNotifyConfig environment variable points. See the
example-config.toml for the config file structure. Set LogLevel to "debug" to
see every event Hyprland sends.

NOTE: A script is started for every event, even if the last one is still
running. So it is best to try to make your scripts idempotent.
*/
package main
